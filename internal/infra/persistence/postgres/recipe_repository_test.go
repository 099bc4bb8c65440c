package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodgram/internal/domain/entity"
	"foodgram/internal/domain/filter"
	"foodgram/internal/errors"
	"foodgram/internal/infra/persistence/model"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=foodgram dbname=foodgram sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func boolPtr(v bool) *bool {
	return &v
}

func TestPlanScope_SQL(t *testing.T) {
	db := newDryRunDB(t)
	author := int64(3)

	plan := filter.RecipeFilter{
		AuthorID:         &author,
		TagSlugs:         []string{"lunch", "breakfast"},
		IsFavorited:      boolPtr(true),
		IsInShoppingCart: boolPtr(false),
	}.Resolve(&entity.Actor{UserID: 9})

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.RecipeModel

		return tx.Model(&model.RecipeModel{}).Scopes(planScope(plan)).Find(&rows)
	})

	assert.Contains(t, sql, "recipes.author_id = 3")
	assert.Contains(t, sql, "t.slug IN ('breakfast','lunch')")
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM favorites m WHERE m.recipe_id = recipes.id AND m.user_id = 9)")
	assert.Contains(t, sql, "NOT EXISTS (SELECT 1 FROM shopping_cart_entries m WHERE m.recipe_id = recipes.id AND m.user_id = 9)")
}

func TestPlanScope_Unconstrained(t *testing.T) {
	db := newDryRunDB(t)
	plan := filter.RecipeFilter{IsInShoppingCart: boolPtr(false)}.Resolve(entity.Anonymous())

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.RecipeModel

		return tx.Model(&model.RecipeModel{}).Scopes(planScope(plan)).Find(&rows)
	})

	assert.NotContains(t, sql, "WHERE")
}

func TestMarkTable(t *testing.T) {
	tests := []struct {
		kind    entity.MarkKind
		want    string
		wantErr bool
	}{
		{kind: entity.MarkFavorite, want: "favorites"},
		{kind: entity.MarkShoppingCart, want: "shopping_cart_entries"},
		{kind: entity.MarkKind("wishlist"), wantErr: true},
		{kind: entity.MarkKind(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := markTable(tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errUnknownMarkKind))
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkRepository_RejectsUnknownKind(t *testing.T) {
	repo := NewMarkRepository(newDryRunDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, &entity.Mark{Kind: entity.MarkKind("wishlist"), UserID: 1, RecipeID: 2})
	assert.True(t, errors.Is(err, errUnknownMarkKind))

	err = repo.Delete(ctx, entity.MarkKind("wishlist"), 1, 2)
	assert.True(t, errors.Is(err, errUnknownMarkKind))

	_, err = repo.Exists(ctx, entity.MarkKind("wishlist"), 1, 2)
	assert.True(t, errors.Is(err, errUnknownMarkKind))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% cream\_x`, escapeLike("50% cream_x"))
}
