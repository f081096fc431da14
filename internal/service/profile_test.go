package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

func TestProfileService_SeedThenOverwrite(t *testing.T) {
	t.Parallel()

	e := newEnv(t, true)
	ctx := context.Background()

	p := e.profile.Get(ctx)
	assert.Equal(t, "Viajante", p.Name)

	saved, err := e.profile.Save(ctx, domain.Profile{Name: " Marina ", Email: "marina@example.com "})
	require.NoError(t, err)
	assert.Equal(t, "Marina", saved.Name)
	assert.Equal(t, "marina@example.com", saved.Email)

	assert.Equal(t, saved, e.profile.Get(ctx), "whole object replaced")

	withAvatar, err := e.profile.SetAvatar(ctx, "file:///avatar.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Marina", withAvatar.Name)
	assert.Equal(t, "file:///avatar.jpg", e.profile.Get(ctx).AvatarURI)
}

func TestProfileService_SaveFailure(t *testing.T) {
	t.Parallel()

	e := newEnv(t, false)
	e.backend.FailWrites(true)

	p, err := e.profile.Save(context.Background(), domain.Profile{Name: "Marina"})

	assert.ErrorIs(t, err, service.ErrNotPersisted)
	assert.Equal(t, "Marina", p.Name)
}
