package commands

import (
	"context"

	"grab-service/internal/domain/code"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/shared"
)

// CodeGenerator picks the next free code in a scope. Its answer is only a
// candidate: a concurrent transaction can take the same code before commit,
// so callers insert with a conflict check and ask again with GenerateAfter.
type CodeGenerator struct {
	width        int
	randomLength int
	maxAttempts  int
}

func NewCodeGenerator(width, maxAttempts int) *CodeGenerator {
	if width <= 0 {
		width = code.DefaultWidth
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &CodeGenerator{
		width:        width,
		randomLength: code.DefaultRandomLength,
		maxAttempts:  maxAttempts,
	}
}

func (g *CodeGenerator) MaxAttempts() int {
	return g.maxAttempts
}

func (g *CodeGenerator) Generate(ctx context.Context, db sqlc.DBTX, store shared.CodeStore, scope code.Scope) (string, error) {
	return g.GenerateAfter(ctx, db, store, scope, "")
}

// GenerateAfter never returns a code at or below floor, which is the last
// candidate the caller lost to a concurrent insert.
func (g *CodeGenerator) GenerateAfter(ctx context.Context, db sqlc.DBTX, store shared.CodeStore, scope code.Scope, floor string) (string, error) {
	if scope.Kind == code.KindRandom {
		return g.random(ctx, db, store, scope)
	}
	return g.sequential(ctx, db, store, scope, floor)
}

func (g *CodeGenerator) sequential(ctx context.Context, db sqlc.DBTX, store shared.CodeStore, scope code.Scope, floor string) (string, error) {
	latest, err := store.LatestCode(ctx, db, scope.Prefix, len(scope.Prefix)+g.width)
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if floor > latest {
		latest = floor
	}

	n, err := code.ParseSuffix(scope.Prefix, latest)
	if err != nil {
		return "", errs.Wrap(err, "latest code in scope is malformed")
	}

	for range g.maxAttempts {
		n++
		candidate, err := code.Format(scope.Prefix, n, g.width)
		if err != nil {
			return "", errs.Mark(err, ErrCodeSpaceExhausted)
		}
		taken, err := store.CodeExists(ctx, db, candidate)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

func (g *CodeGenerator) random(ctx context.Context, db sqlc.DBTX, store shared.CodeStore, scope code.Scope) (string, error) {
	for range g.maxAttempts {
		candidate, err := code.Random(scope.Prefix, g.randomLength)
		if err != nil {
			return "", errs.Wrap(err, "failed to read random source")
		}
		taken, err := store.CodeExists(ctx, db, candidate)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}
