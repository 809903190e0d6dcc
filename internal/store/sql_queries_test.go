// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-folio/models"
)

func Test_buildListProjectsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListProjectsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from projects")
	require.Contains(t, q, "order by id desc")

	cols := []string{"id", "title", "description", "emoji", "github_url", "demo_url", "featured", "technologies"}
	for _, c := range cols {
		require.Contains(t, q, c, "query should contain column %q", c)
	}
}

func Test_buildListExperienceQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListExperienceQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "from experience")
	require.Contains(t, q, "order by id desc")

	cols := []string{"id", "company", "position", "period", "description", "achievements"}
	for _, c := range cols {
		require.Contains(t, q, c, "query should contain column %q", c)
	}
}

func Test_buildListSkillsQuery_OrdersByCategory(t *testing.T) {
	query, args, err := buildListSkillsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "from skills")
	require.Contains(t, q, "order by category, id")
}

func Test_buildListFeaturesQuery_OrdersByOrderIndex(t *testing.T) {
	query, args, err := buildListFeaturesQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "from features")
	require.Contains(t, q, "order by order_index, id")
}

func Test_buildListSEOSettingsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListSEOSettingsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "from seo_settings")
	require.Contains(t, q, "order by page_name")

	cols := []string{"page_name", "title", "description", "keywords", "og_image", "twitter_image", "canonical_url"}
	for _, c := range cols {
		require.Contains(t, q, c, "query should contain column %q", c)
	}
}

func Test_buildUpsertSEOQuery_SQLContainsParts(t *testing.T) {
	setting := models.SEOSetting{
		PageName:     "about",
		Title:        "About me",
		Description:  "desc",
		Keywords:     "go, backend",
		OGImage:      "https://example.com/og.png",
		TwitterImage: "https://example.com/tw.png",
		CanonicalURL: "https://example.com/about",
	}

	query, args, err := buildUpsertSEOQuery(setting)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// upsert structure
	require.Contains(t, q, "insert into seo_settings")
	require.Contains(t, q, "on conflict (page_name) do update set")
	require.Contains(t, q, "returning page_name")

	// Postgres placeholders
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$7")

	// args order mirrors the column list
	require.Len(t, args, 7)
	assert.Equal(t, "about", args[0])
	assert.Equal(t, "About me", args[1])
	assert.Equal(t, "desc", args[2])
	assert.Equal(t, "go, backend", args[3])
	assert.Equal(t, "https://example.com/og.png", args[4])
	assert.Equal(t, "https://example.com/tw.png", args[5])
	assert.Equal(t, "https://example.com/about", args[6])
}

func Test_buildUpsertSEOQuery_Idempotent(t *testing.T) {
	setting := models.SEOSetting{PageName: "home", Title: "Home"}

	query1, args1, err1 := buildUpsertSEOQuery(setting)
	require.NoError(t, err1)

	query2, args2, err2 := buildUpsertSEOQuery(setting)
	require.NoError(t, err2)

	require.Equal(t, query1, query2)
	require.Equal(t, args1, args2)
}
