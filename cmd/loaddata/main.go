package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jaswdr/faker"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"foodgram/config"
	"foodgram/internal/domain/entity"
	"foodgram/internal/domain/lifecycle"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/infra/auth"
	logs "foodgram/internal/infra/log"
	"foodgram/internal/infra/persistence/postgres"
)

const demoPassword = "foodgram-demo"

type loader struct {
	fx.In

	Logger         *slog.Logger
	IngredientRepo repository.IngredientRepository
	TagRepo        repository.TagRepository
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
}

func main() {
	ingredientsPath := flag.String("ingredients", "./data/ingredients.csv", "CSV file with name,measurement_unit rows")
	skipTags := flag.Bool("skip-tags", false, "Do not create the default tags")
	demoUsers := flag.Int("demo-users", 0, "Number of fake demo accounts to create")
	flag.Parse()

	if err := run(*ingredientsPath, *skipTags, *demoUsers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ingredientsPath string, skipTags bool, demoUsers int) error {
	var l loader
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewIngredientRepository,
			postgres.NewTagRepository,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
		),
		fx.Populate(&l),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build loader")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start loader")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			l.Logger.Warn("Failed to stop loader", slog.Any("error", err))
		}
	}()

	ctx := context.Background()

	if ingredientsPath != "" {
		if err := l.loadIngredients(ctx, ingredientsPath); err != nil {
			return err
		}
	}
	if !skipTags {
		if err := l.loadTags(ctx); err != nil {
			return err
		}
	}
	if demoUsers > 0 {
		if err := l.loadDemoUsers(ctx, demoUsers); err != nil {
			return err
		}
	}

	return nil
}

func (l loader) loadIngredients(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	ingredients, err := readIngredients(file)
	if err != nil {
		return err
	}

	inserted, err := l.IngredientRepo.BulkCreate(ctx, ingredients)
	if err != nil {
		return errors.Wrap(err, "failed to load ingredients")
	}

	l.Logger.Info("Ingredients loaded", slog.Int("read", len(ingredients)), slog.Int64("inserted", inserted))

	return nil
}

func (l loader) loadTags(ctx context.Context) error {
	inserted, err := l.TagRepo.BulkCreate(ctx, defaultTags())
	if err != nil {
		return errors.Wrap(err, "failed to load tags")
	}

	l.Logger.Info("Tags loaded", slog.Int64("inserted", inserted))

	return nil
}

// loadDemoUsers creates fake accounts sharing demoPassword.
// Generated names that collide with existing accounts are skipped.
func (l loader) loadDemoUsers(ctx context.Context, count int) error {
	hash, err := l.Hasher.Hash(demoPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash demo password")
	}

	fake := faker.New()
	created := 0

	for i := 0; i < count; i++ {
		firstName := fake.Person().FirstName()
		lastName := fake.Person().LastName()
		username := fmt.Sprintf("%s.%s%d", strings.ToLower(firstName), strings.ToLower(lastName), fake.IntBetween(1, 9999))
		user := &entity.User{
			Email:        username + "@demo.foodgram.local",
			Username:     username,
			FirstName:    firstName,
			LastName:     lastName,
			PasswordHash: hash,
			Role:         entity.RoleUser,
		}

		if !entity.ValidUsername(user.Username) {
			continue
		}

		taken, err := l.UserRepo.ExistsByEmailOrUsername(ctx, user.Email, user.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check demo user")
		}
		if taken {
			continue
		}

		if err := l.UserRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				continue
			}

			return errors.Wrap(err, "failed to create demo user")
		}
		created++
	}

	l.Logger.Info("Demo users loaded", slog.Int("created", created), slog.String("password", demoPassword))

	return nil
}
