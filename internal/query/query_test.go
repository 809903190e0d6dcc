package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-folio/models"
)

func TestQuery_FetchPopulatesState(t *testing.T) {
	q := New(func(ctx context.Context) ([]models.Project, error) {
		return []models.Project{{ID: 1, Title: "go-folio"}}, nil
	})

	data, err := q.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, data, 1)

	state := q.State()
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	assert.Equal(t, "go-folio", state.Data[0].Title)
}

func TestQuery_ErrorKeepsPreviousData(t *testing.T) {
	calls := 0
	q := New(func(ctx context.Context) ([]models.Project, error) {
		calls++
		if calls == 1 {
			return []models.Project{{ID: 1, Title: "go-folio"}}, nil
		}
		return nil, errors.New("backend down")
	})
	ctx := context.Background()

	_, err := q.Fetch(ctx)
	require.NoError(t, err)

	_, err = q.Fetch(ctx)
	require.Error(t, err)

	state := q.State()
	assert.Error(t, state.Err)
	// the UI keeps rendering the last good value next to the error
	require.Len(t, state.Data, 1)
	assert.Equal(t, "go-folio", state.Data[0].Title)
}

func TestQuery_LoadingVisibleDuringFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	q := New(func(ctx context.Context) (int, error) {
		close(started)
		<-release
		return 7, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = q.Fetch(context.Background())
	}()

	<-started
	assert.True(t, q.State().Loading)

	close(release)
	wg.Wait()
	assert.False(t, q.State().Loading)
}

// TestKeyed_SlowResponseNeverOverwritesNewerOne pins the ordering guarantee:
// the user opens "contact", then quickly switches to "about"; the "about"
// response lands first, and when the slow "contact" response finally arrives
// it is discarded instead of clobbering the visible page.
func TestKeyed_SlowResponseNeverOverwritesNewerOne(t *testing.T) {
	contactStarted := make(chan struct{})
	releaseContact := make(chan struct{})

	q := NewKeyed(func(ctx context.Context, page string) (models.SEOSetting, error) {
		if page == "contact" {
			close(contactStarted)
			<-releaseContact
		}
		return models.SEOSetting{PageName: page, Title: page + " title"}, nil
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	var contactErr error
	go func() {
		defer wg.Done()
		_, contactErr = q.Fetch(ctx, "contact")
	}()

	<-contactStarted

	about, err := q.Fetch(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "about", about.PageName)

	close(releaseContact)
	wg.Wait()

	assert.ErrorIs(t, contactErr, ErrStale)
	state := q.State()
	assert.Equal(t, "about", state.Data.PageName)
	assert.Equal(t, "about", q.Key())
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
}

func TestKeyed_FetchByKey(t *testing.T) {
	q := NewKeyed(func(ctx context.Context, page string) (models.SEOSetting, error) {
		if page == "ghost" {
			return models.SEOSetting{}, errors.New("404: SEO settings not found")
		}
		return models.SEOSetting{PageName: page}, nil
	})
	ctx := context.Background()

	setting, err := q.Fetch(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "home", setting.PageName)

	_, err = q.Fetch(ctx, "ghost")
	require.Error(t, err)
	assert.Error(t, q.State().Err)
}
