// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character"
	charactermock "github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character/mock"
)

// ExpectSave expects a save to path and echoes the path back
func ExpectSave(ctx context.Context, repo *charactermock.MockRepository, path string) *gomock.Call {
	return repo.EXPECT().
		Save(ctx, gomock.Cond(func(input characterrepo.SaveInput) bool {
			return input.Path == path && input.Character != nil
		})).
		Return(&characterrepo.SaveOutput{Path: path}, nil)
}

// ExpectSaveFailure expects a save to path that fails with a SAVE_FAILED error
func ExpectSaveFailure(ctx context.Context, repo *charactermock.MockRepository, path string) *gomock.Call {
	return repo.EXPECT().
		Save(ctx, gomock.Cond(func(input characterrepo.SaveInput) bool {
			return input.Path == path
		})).
		Return(nil, errors.SaveFailedf("permission denied writing %s", path))
}

// ExpectLoad expects a load of path returning a copy of character
func ExpectLoad(ctx context.Context, repo *charactermock.MockRepository, path string, character *ryuutama.Character) *gomock.Call {
	return repo.EXPECT().
		Load(ctx, characterrepo.LoadInput{Path: path}).
		Return(&characterrepo.LoadOutput{Path: path, Character: character.Clone()}, nil)
}

// ExpectLoadFailure expects a load of path that fails with a LOAD_FAILED error
func ExpectLoadFailure(ctx context.Context, repo *charactermock.MockRepository, path string) *gomock.Call {
	return repo.EXPECT().
		Load(ctx, characterrepo.LoadInput{Path: path}).
		Return(nil, errors.LoadFailedf("%s is not a character document", path))
}
