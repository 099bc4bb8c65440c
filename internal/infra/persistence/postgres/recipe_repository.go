package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/filter"
	"foodgram/internal/domain/repository"
	"foodgram/internal/errors"
	"foodgram/internal/infra/persistence/model"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts the recipe row, then its ingredient and tag rows.
// Callers run it inside a transaction.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(recipeM).Error; err != nil {
		return translateRecipeWriteError(err, "failed to create recipe")
	}

	amounts := make([]entity.IngredientAmount, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		amounts = append(amounts, entity.IngredientAmount{IngredientID: line.IngredientID, Amount: line.Amount})
	}
	if err := repo.insertIngredients(ctx, recipeM.ID, amounts); err != nil {
		return err
	}

	tagIDs := make([]int64, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	if err := repo.insertTags(ctx, recipeM.ID, tagIDs); err != nil {
		return err
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].RecipeID = recipeM.ID
	}

	return nil
}

// Update saves the scalar fields of an existing recipe. The author is never changed.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]any{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
			"updated_at":   now,
		})
	if result.Error != nil {
		return translateRecipeWriteError(result.Error, "failed to update recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	recipe.UpdatedAt = now

	return nil
}

// ReplaceIngredients swaps all ingredient rows of the recipe.
func (repo *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID int64, items []entity.IngredientAmount) error {
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&model.RecipeIngredientModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear recipe ingredients")
	}

	return repo.insertIngredients(ctx, recipeID, items)
}

// ReplaceTags swaps all tag rows of the recipe.
func (repo *recipeRepository) ReplaceTags(ctx context.Context, recipeID int64, tagIDs []int64) error {
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&model.RecipeTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear recipe tags")
	}

	return repo.insertTags(ctx, recipeID, tagIDs)
}

func (repo *recipeRepository) insertIngredients(ctx context.Context, recipeID int64, items []entity.IngredientAmount) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]*model.RecipeIngredientModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, &model.RecipeIngredientModel{
			RecipeID:     recipeID,
			IngredientID: item.IngredientID,
			Amount:       item.Amount,
		})
	}

	if err := repo.db.WithContext(ctx).Create(rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIngredientNotFound
		}

		return translateRecipeWriteError(err, "failed to insert recipe ingredients")
	}

	return nil
}

func (repo *recipeRepository) insertTags(ctx context.Context, recipeID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]*model.RecipeTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, &model.RecipeTagModel{RecipeID: recipeID, TagID: tagID})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTagNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert recipe tags")
	}

	return nil
}

// Delete removes a recipe; association rows are removed by ON DELETE CASCADE.
func (repo *recipeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// FindByID loads a recipe with its author, tags and ingredients.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.withDetails(repo.db.WithContext(ctx)).
		Where("recipes.id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// List returns the recipes matching the plan, newest first.
func (repo *recipeRepository) List(ctx context.Context, plan filter.Plan, limit, offset int) ([]*entity.Recipe, int64, error) {
	if plan.Empty {
		return []*entity.Recipe{}, 0, nil
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Scopes(planScope(plan)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count recipes")
	}

	var recipeModels []*model.RecipeModel
	if err := repo.withDetails(repo.db.WithContext(ctx)).
		Scopes(planScope(plan)).
		Order("recipes.created_at DESC, recipes.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, total, nil
}

// ListByAuthor returns the latest recipes of an author without associations.
func (repo *recipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]*entity.Recipe, error) {
	query := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipeModels []*model.RecipeModel
	if err := query.Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by author")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// CountByAuthor returns the number of recipes the author has published.
func (repo *recipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recipes by author")
	}

	return count, nil
}

type cartIngredientRow struct {
	RecipeID        int64
	IngredientID    int64
	Name            string
	MeasurementUnit string
	Amount          int
}

// FindCartIngredients returns the ingredient lines of every recipe in the user's cart.
func (repo *recipeRepository) FindCartIngredients(ctx context.Context, userID int64) ([]entity.RecipeIngredient, error) {
	cartTable, err := markTable(entity.MarkShoppingCart)
	if err != nil {
		return nil, err
	}

	var rows []cartIngredientRow
	if err := repo.db.WithContext(ctx).
		Table("recipe_ingredients AS ri").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount").
		Joins("JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Joins("JOIN "+cartTable+" AS sc ON sc.recipe_id = ri.recipe_id").
		Where("sc.user_id = ?", userID).
		Order("ri.ingredient_id, ri.recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load shopping cart ingredients")
	}

	lines := make([]entity.RecipeIngredient, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entity.RecipeIngredient{
			RecipeID:        row.RecipeID,
			IngredientID:    row.IngredientID,
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	return lines, nil
}

func (repo *recipeRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id") }).
		Preload("Ingredients.Ingredient")
}

// planScope translates a filter plan into WHERE clauses on the recipes table.
func planScope(plan filter.Plan) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if plan.AuthorID != nil {
			db = db.Where("recipes.author_id = ?", *plan.AuthorID)
		}

		for _, slugs := range plan.TagGroups {
			db = db.Where(
				"EXISTS (SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE rt.recipe_id = recipes.id AND t.slug IN ?)",
				slugs,
			)
		}

		for _, mark := range plan.Marks {
			table, err := markTable(mark.Kind)
			if err != nil {
				_ = db.AddError(err)

				return db
			}

			exists := "EXISTS (SELECT 1 FROM " + table + " m WHERE m.recipe_id = recipes.id AND m.user_id = ?)"
			if !mark.Present {
				exists = "NOT " + exists
			}
			db = db.Where(exists, plan.ActorID)
		}

		return db
	}
}

func translateRecipeWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(pgConstraintName(err))
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("duplicate ingredient in recipe")
	case isForeignKeyConstraintViolation(err):
		return repository.ErrUserNotFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		Author:      toUserDomain(data.Author),
		Name:        data.Name,
		Text:        data.Text,
		CookingTime: data.CookingTime,
		Image:       data.Image,
		Tags:        make([]entity.Tag, 0, len(data.Tags)),
		Ingredients: make([]entity.RecipeIngredient, 0, len(data.Ingredients)),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for i := range data.Tags {
		recipe.Tags = append(recipe.Tags, *toTagDomain(&data.Tags[i]))
	}

	for _, line := range data.Ingredients {
		item := entity.RecipeIngredient{
			RecipeID:     data.ID,
			IngredientID: line.IngredientID,
			Amount:       line.Amount,
		}
		if line.Ingredient != nil {
			item.Name = line.Ingredient.Name
			item.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		recipe.Ingredients = append(recipe.Ingredients, item)
	}

	return recipe
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	return &model.RecipeModel{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		Name:        data.Name,
		Text:        data.Text,
		CookingTime: data.CookingTime,
		Image:       data.Image,
	}
}
