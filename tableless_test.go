package tableless_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/tableless"
)

func TestPublicSurface_FailFast(t *testing.T) {
	d := tableless.NewDefinition("signup")
	d.AddColumns("string", "email", "password")

	r := d.New(map[string]any{"email": "a@example.com"})
	require.ErrorIs(t, r.Save(), tableless.ErrNoDatabase)

	found, err := d.Find(1)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestPublicSurface_PretendSuccess(t *testing.T) {
	d := tableless.NewDefinition("signup", tableless.WithMode(tableless.PretendSuccess))
	d.AddColumn("email", "string", tableless.NotNull())
	d.AddColumn("newsletter", "boolean", tableless.WithDefault(false))

	r := d.New(map[string]any{"email": "a@example.com"})
	require.NoError(t, r.Save())

	qs := r.ToQueryString("signup")
	require.Equal(t, "signup[email]=a%40example.com&signup[newsletter]=0", qs)

	back := d.FromQueryString("email=b%40example.com&newsletter=1")
	require.Equal(t, "b@example.com", back.Get("email"))
	require.Equal(t, true, back.Get("newsletter"))
}
