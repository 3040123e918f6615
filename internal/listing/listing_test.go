package listing

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("returns twelve valid listings", func(t *testing.T) {
		t.Parallel()

		items := Catalog()
		require.Len(t, items, 12)
		for _, item := range items {
			assert.NoError(t, item.Validate(), item.Name)
		}
	})

	t.Run("returns a fresh copy on every call", func(t *testing.T) {
		t.Parallel()

		first := Catalog()
		first[0].Price = 1

		second := Catalog()
		assert.Equal(t, int64(28990), second[0].Price)
	})
}

func TestSortByPrice(t *testing.T) {
	t.Parallel()

	t.Run("sorts the catalog with the cheapest first", func(t *testing.T) {
		t.Parallel()

		sorted := SortByPrice(Catalog())
		require.Len(t, sorted, 12)
		assert.True(t, IsSortedByPrice(sorted))
		assert.Equal(t, int64(24990), sorted[0].Price)
		assert.Contains(t, sorted[0].Name, "MarQ")
		assert.Equal(t, int64(39990), sorted[len(sorted)-1].Price)
	})

	t.Run("keeps catalog order for equal prices", func(t *testing.T) {
		t.Parallel()

		in := []Listing{
			{Name: "c", Price: 300},
			{Name: "a1", Price: 100},
			{Name: "b", Price: 200},
			{Name: "a2", Price: 100},
		}

		got := SortByPrice(in)
		assert.Equal(t, []string{"a1", "a2", "b", "c"}, names(got))
		assert.Equal(t, "c", in[0].Name, "input must not be reordered")
	})

	t.Run("returns empty slice for nil input", func(t *testing.T) {
		t.Parallel()

		got := SortByPrice(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("is stable for random inputs of any size", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(42))
		for size := 0; size <= 64; size++ {
			in := make([]Listing, size)
			for i := range in {
				// few distinct prices so ties are common
				in[i] = Listing{Name: fmt.Sprintf("item-%d", i), Price: int64(rng.Intn(5) + 1)}
			}

			got := SortByPrice(in)
			require.Len(t, got, size)
			assert.True(t, IsSortedByPrice(got))

			for i := 1; i < len(got); i++ {
				if got[i-1].Price == got[i].Price {
					assert.Less(t, index(in, got[i-1].Name), index(in, got[i].Name))
				}
			}
		}
	})
}

func TestListingValidate(t *testing.T) {
	t.Parallel()

	valid := Listing{Name: "n", Price: 1, Site: "s", URL: "https://example.com/x"}

	tests := []struct {
		name    string
		mutate  func(*Listing)
		wantErr string
	}{
		{name: "valid without image", mutate: func(*Listing) {}},
		{name: "valid with image", mutate: func(l *Listing) { l.Image = "https://example.com/i.png" }},
		{name: "empty name", mutate: func(l *Listing) { l.Name = " " }, wantErr: "name is empty"},
		{name: "zero price", mutate: func(l *Listing) { l.Price = 0 }, wantErr: "price must be positive"},
		{name: "empty site", mutate: func(l *Listing) { l.Site = "" }, wantErr: "site is empty"},
		{name: "relative url", mutate: func(l *Listing) { l.URL = "/search" }, wantErr: "url must be absolute"},
		{name: "relative image", mutate: func(l *Listing) { l.Image = "img.png" }, wantErr: "image must be absolute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := valid
			tt.mutate(&l)

			err := l.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 30, 0, 123456789, time.FixedZone("IST", 5*3600+1800))

	t.Run("success carries count and utc timestamp", func(t *testing.T) {
		t.Parallel()

		env := NewSuccess(SortByPrice(Catalog()), now)
		assert.True(t, env.Success)
		assert.Equal(t, len(env.Listings), env.Count)
		require.NotNil(t, env.Timestamp)
		assert.Equal(t, "2026-03-01T05:00:00.123Z", env.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"))
		assert.NoError(t, env.Validate())
	})

	t.Run("success with nil listings encodes an empty array", func(t *testing.T) {
		t.Parallel()

		env := NewSuccess(nil, now)
		assert.Equal(t, 0, env.Count)

		b, err := json.Marshal(env)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"listings":[]`)
	})

	t.Run("failure has zero count and no timestamp", func(t *testing.T) {
		t.Parallel()

		env := NewFailure("boom")
		assert.False(t, env.Success)
		assert.Equal(t, 0, env.Count)
		assert.Empty(t, env.Listings)
		assert.NoError(t, env.Validate())

		b, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"listings":[],"count":0,"error":"boom"}`, string(b))
	})

	t.Run("failure never has an empty message", func(t *testing.T) {
		t.Parallel()
		assert.NotEmpty(t, NewFailure("").Error)
	})

	t.Run("round trips through json", func(t *testing.T) {
		t.Parallel()

		for _, env := range []Envelope{NewSuccess(SortByPrice(Catalog()), now), NewSuccess(nil, now), NewFailure("boom")} {
			b, err := json.Marshal(env)
			require.NoError(t, err)

			var got Envelope
			require.NoError(t, json.Unmarshal(b, &got))
			assert.Equal(t, env, got)
		}
	})

	t.Run("omits absent image", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(Listing{Name: "n", Price: 1, Site: "s", URL: "https://e.x"})
		require.NoError(t, err)
		assert.NotContains(t, string(b), "image")
	})
}

func TestEnvelopeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     Envelope
		wantErr string
	}{
		{
			name:    "count mismatch",
			env:     Envelope{Success: true, Listings: []Listing{{Price: 1}}, Count: 2},
			wantErr: "does not match",
		},
		{
			name:    "failure without message",
			env:     Envelope{Success: false, Listings: []Listing{}},
			wantErr: "failure without error message",
		},
		{
			name:    "failure with listings",
			env:     Envelope{Success: false, Listings: []Listing{{Price: 1}}, Count: 1, Error: "x"},
			wantErr: "failure carries listings",
		},
		{
			name:    "unsorted",
			env:     Envelope{Success: true, Listings: []Listing{{Price: 2}, {Price: 1}}, Count: 2},
			wantErr: "not sorted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.env.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func names(ls []Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Name)
	}
	return out
}

func index(ls []Listing, name string) int {
	for i, l := range ls {
		if l.Name == name {
			return i
		}
	}
	return -1
}
