package vault

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestVault_Add(t *testing.T) {
	v := New()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return fixed }

	record, err := v.Add("github.com", "octocat", "Secr3t!!")
	require.NoError(t, err)

	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err, "ID must be a UUID")
	assert.Equal(t, "github.com", record.Site)
	assert.Equal(t, "octocat", record.Account)
	assert.Equal(t, "Secr3t!!", record.Secret)
	assert.Equal(t, fixed, record.CreatedAt)
	assert.Equal(t, 1, v.Len())
}

func TestVault_Add_RequiresAllFields(t *testing.T) {
	tests := []struct {
		name    string
		site    string
		account string
		secret  string
	}{
		{name: "empty site", site: "", account: "a", secret: "s"},
		{name: "blank account", site: "x.com", account: "   ", secret: "s"},
		{name: "empty secret", site: "x.com", account: "a", secret: ""},
		{name: "all empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			_, err := v.Add(tt.site, tt.account, tt.secret)
			assert.ErrorIs(t, err, ErrEmptyField)
			assert.Equal(t, 0, v.Len())
		})
	}
}

func TestVault_List_InsertionOrder(t *testing.T) {
	v := New()
	sites := []string{"b.com", "a.com", "c.com"}
	for _, s := range sites {
		_, err := v.Add(s, "user", "pw")
		require.NoError(t, err)
	}

	list := v.List()
	require.Len(t, list, 3)
	for i, r := range list {
		assert.Equal(t, sites[i], r.Site)
	}
}

func TestVault_List_ReturnsCopies(t *testing.T) {
	v := New()
	_, err := v.Add("a.com", "user", "pw")
	require.NoError(t, err)

	list := v.List()
	list[0].Secret = "changed"

	assert.Equal(t, "pw", v.List()[0].Secret)
}

func TestVault_FilterBySite(t *testing.T) {
	v := New()
	for _, s := range []string{"GitHub.com", "gitlab.com", "Example.org"} {
		_, err := v.Add(s, "user", "pw")
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "case insensitive", query: "GIT", expected: []string{"GitHub.com", "gitlab.com"}},
		{name: "single", query: "hub", expected: []string{"GitHub.com"}},
		{name: "blank returns all", query: "", expected: []string{"GitHub.com", "gitlab.com", "Example.org"}},
		{name: "no match", query: "bitbucket", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.FilterBySite(tt.query)
			sites := make([]string, 0, len(got))
			for _, r := range got {
				sites = append(sites, r.Site)
			}
			assert.Equal(t, tt.expected, sites)
		})
	}
}

func TestVault_Reveal(t *testing.T) {
	v := New()
	added, err := v.Add("a.com", "user", "pw")
	require.NoError(t, err)

	got, err := v.Reveal(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	_, err = v.Reveal("missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestVault_Delete(t *testing.T) {
	v := New()
	first, err := v.Add("a.com", "user", "pw")
	require.NoError(t, err)
	second, err := v.Add("b.com", "user", "pw")
	require.NoError(t, err)

	require.NoError(t, v.Delete(first.ID))

	list := v.List()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	assert.ErrorIs(t, v.Delete(first.ID), ErrRecordNotFound)
}

func TestVault_Clear(t *testing.T) {
	v := New()
	added, err := v.Add("a.com", "user", "pw")
	require.NoError(t, err)

	v.Clear()

	assert.Zero(t, v.Len())
	assert.Empty(t, v.List())
	_, err = v.Reveal(added.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// После очистки vault снова принимает записи
	_, err = v.Add("b.com", "user", "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
}

func TestVault_ConcurrentAccess(t *testing.T) {
	v := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = v.Add(fmt.Sprintf("site%d.com", i), "user", "pw")
		}(i)
		go func() {
			defer wg.Done()
			_ = v.FilterBySite("site")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, v.Len())
}
