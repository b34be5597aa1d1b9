package typed_test

import (
	"context"
	"testing"

	"github.com/aretw0/chaise/pkg/core"
	"github.com/aretw0/chaise/pkg/typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedService(t *testing.T) {
	repo, _ := setupRepo(t)
	svc := typed.NewService[UserProfile](core.NewService(repo))
	ctx := context.Background()

	doc := &core.Document[UserProfile]{ID: "carol", Content: UserProfile{Name: "Carol", Age: 41}}
	require.NoError(t, svc.Save(ctx, core.Normal, doc))

	got, err := svc.Get(ctx, core.Normal, "carol")
	require.NoError(t, err)
	assert.Equal(t, "Carol", got.Content.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, core.Normal, got))
	_, err = svc.Get(ctx, core.Normal, "carol")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestTypedService_ReadOnly(t *testing.T) {
	repo, srv := setupRepo(t)
	svc := typed.NewService[UserProfile](core.NewService(repo, core.WithServiceReadOnly(true)))

	err := svc.Save(context.Background(), core.Normal, &core.Document[UserProfile]{ID: "dave"})
	assert.ErrorIs(t, err, core.ErrReadOnly)
	for _, r := range srv.Requests() {
		assert.NotContains(t, r, "PUT")
	}
}

func TestTypedService_FailedSaveKeepsEmptyID(t *testing.T) {
	repo, _ := setupRepo(t)
	svc := typed.NewService[UserProfile](core.NewService(repo, core.WithServiceReadOnly(true)))

	doc := &core.Document[UserProfile]{Content: UserProfile{Name: "Anon"}}
	assert.ErrorIs(t, svc.Save(context.Background(), core.Normal, doc), core.ErrReadOnly)
	assert.Empty(t, doc.ID)
}
