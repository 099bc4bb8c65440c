package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/repository"
	"foodgram/internal/errors"
	"foodgram/internal/infra/persistence/model"
)

const bulkInsertBatchSize = 500

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

// Search matches a case-insensitive name prefix.
func (repo *ingredientRepository) Search(ctx context.Context, prefix string) ([]*entity.Ingredient, error) {
	query := repo.db.WithContext(ctx).Order("name ASC, id ASC")
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		query = query.Where("name ILIKE ?", escapeLike(prefix)+"%")
	}

	var ingredientModels []*model.IngredientModel
	if err := query.Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search ingredients")
	}

	return toIngredientsDomain(ingredientModels), nil
}

// FindByID retrieves an ingredient by id.
func (repo *ingredientRepository) FindByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ingredientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by id")
	}

	return toIngredientDomain(&ingredientM), nil
}

// FindByIDs returns the existing ingredients among ids.
func (repo *ingredientRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Ingredient, error) {
	if len(ids) == 0 {
		return []*entity.Ingredient{}, nil
	}

	var ingredientModels []*model.IngredientModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ingredients by ids")
	}

	return toIngredientsDomain(ingredientModels), nil
}

// BulkCreate inserts ingredients in batches, skipping existing (name, unit) pairs.
func (repo *ingredientRepository) BulkCreate(ctx context.Context, ingredients []*entity.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	rows := make([]*model.IngredientModel, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, &model.IngredientModel{Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit})
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, bulkInsertBatchSize)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to bulk insert ingredients")
	}

	return result.RowsAffected, nil
}

// tagRepository implements the repository.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// List returns all tags ordered by id.
func (repo *tagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return toTagsDomain(tagModels), nil
}

// FindByID retrieves a tag by id.
func (repo *tagRepository) FindByID(ctx context.Context, id int64) (*entity.Tag, error) {
	var tagM model.TagModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by id")
	}

	return toTagDomain(&tagM), nil
}

// FindByIDs returns the existing tags among ids.
func (repo *tagRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Tag, error) {
	if len(ids) == 0 {
		return []*entity.Tag{}, nil
	}

	var tagModels []*model.TagModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tags by ids")
	}

	return toTagsDomain(tagModels), nil
}

// Create persists a new tag.
func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagM := &model.TagModel{Name: tag.Name, Color: tag.Color, Slug: tag.Slug}

	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTag
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(pgConstraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	tag.ID = tagM.ID

	return nil
}

// BulkCreate inserts tags, skipping any that conflict with existing ones.
func (repo *tagRepository) BulkCreate(ctx context.Context, tags []*entity.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	rows := make([]*model.TagModel, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, &model.TagModel{Name: tag.Name, Color: tag.Color, Slug: tag.Slug})
	}

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to bulk insert tags")
	}

	return result.RowsAffected, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	return &entity.Ingredient{ID: data.ID, Name: data.Name, MeasurementUnit: data.MeasurementUnit}
}

func toIngredientsDomain(data []*model.IngredientModel) []*entity.Ingredient {
	result := make([]*entity.Ingredient, 0, len(data))
	for _, ingredientM := range data {
		result = append(result, toIngredientDomain(ingredientM))
	}

	return result
}

func toTagDomain(data *model.TagModel) *entity.Tag {
	return &entity.Tag{ID: data.ID, Name: data.Name, Color: data.Color, Slug: data.Slug}
}

func toTagsDomain(data []*model.TagModel) []*entity.Tag {
	result := make([]*entity.Tag, 0, len(data))
	for _, tagM := range data {
		result = append(result, toTagDomain(tagM))
	}

	return result
}
