package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/policy"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/domain/shopping"
	"foodgram/internal/errors"
	"foodgram/internal/usecase"
)

// DefaultShoppingListFormat is used when no export format is requested.
const DefaultShoppingListFormat = "txt"

// shoppingService implements the ShoppingUsecase interface.
type shoppingService struct {
	recipeRepo repository.RecipeRepository
	renderers  map[string]service.ShoppingListRenderer
	logger     *slog.Logger
}

// ShoppingServiceParams holds dependencies for ShoppingService, injected by Fx.
type ShoppingServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	Renderers  []service.ShoppingListRenderer `group:"shopping_list_renderers"`
	Logger     *slog.Logger
}

// NewShoppingService is the constructor for shoppingService.
func NewShoppingService(params ShoppingServiceParams) usecase.ShoppingUsecase {
	renderers := make(map[string]service.ShoppingListRenderer, len(params.Renderers))
	for _, renderer := range params.Renderers {
		renderers[renderer.Format()] = renderer
	}

	return &shoppingService{
		recipeRepo: params.RecipeRepo,
		renderers:  renderers,
		logger:     params.Logger,
	}
}

// BuildShoppingList sums the ingredient amounts of every recipe in the actor's cart.
func (srv *shoppingService) BuildShoppingList(ctx context.Context, actor *entity.Actor) ([]entity.ShoppingListItem, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	lines, err := srv.recipeRepo.FindCartIngredients(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shopping cart ingredients")
	}

	items := shopping.Aggregate(lines)

	srv.logger.Debug("Shopping list built",
		slog.Int64("user_id", actor.UserID),
		slog.Int("lines", len(lines)),
		slog.Int("items", len(items)),
		slog.Int("total_amount", shopping.Total(items)),
	)

	return items, nil
}

// Export renders the shopping list with the renderer registered for format.
func (srv *shoppingService) Export(ctx context.Context, actor *entity.Actor, format string) (*usecase.ShoppingListExport, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultShoppingListFormat
	}

	renderer, ok := srv.renderers[format]
	if !ok {
		return nil, domainerrors.ErrUnsupportedFormat.WithDetails("format " + format + " is not supported")
	}

	items, err := srv.BuildShoppingList(ctx, actor)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, items); err != nil {
		return nil, errors.Wrapf(err, "failed to render shopping list as %s", format)
	}

	return &usecase.ShoppingListExport{
		FileName:    renderer.FileName(actor.Username),
		ContentType: renderer.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
