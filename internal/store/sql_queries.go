package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"go-folio/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	getProfile = `SELECT name, title, bio, email, phone, location, github_url, linkedin_url
		FROM profile
		WHERE id = 1;`

	updateProfile = `UPDATE profile
		SET name = $1, title = $2, bio = $3, email = $4, phone = $5, location = $6, github_url = $7, linkedin_url = $8
		WHERE id = 1
		RETURNING name, title, bio, email, phone, location, github_url, linkedin_url;`

	getProject = `SELECT id, title, description, emoji, github_url, demo_url, featured, technologies
		FROM projects
		WHERE id = $1;`

	createProject = `INSERT INTO projects (title, description, emoji, github_url, demo_url, featured, technologies)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, emoji, github_url, demo_url, featured, technologies;`

	updateProject = `UPDATE projects
		SET title = $1, description = $2, emoji = $3, github_url = $4, demo_url = $5, featured = $6, technologies = $7
		WHERE id = $8
		RETURNING id, title, description, emoji, github_url, demo_url, featured, technologies;`

	deleteProject = `DELETE FROM projects WHERE id = $1;`

	getExperience = `SELECT id, company, position, period, description, achievements
		FROM experience
		WHERE id = $1;`

	createExperience = `INSERT INTO experience (company, position, period, description, achievements)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company, position, period, description, achievements;`

	updateExperience = `UPDATE experience
		SET company = $1, position = $2, period = $3, description = $4, achievements = $5
		WHERE id = $6
		RETURNING id, company, position, period, description, achievements;`

	deleteExperience = `DELETE FROM experience WHERE id = $1;`

	getSkill = `SELECT id, category, name, level, icon_url, color
		FROM skills
		WHERE id = $1;`

	createSkill = `INSERT INTO skills (category, name, level, icon_url, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, category, name, level, icon_url, color;`

	updateSkill = `UPDATE skills
		SET category = $1, name = $2, level = $3, icon_url = $4, color = $5
		WHERE id = $6
		RETURNING id, category, name, level, icon_url, color;`

	deleteSkill = `DELETE FROM skills WHERE id = $1;`

	getFeature = `SELECT id, title, description, icon, order_index
		FROM features
		WHERE id = $1;`

	createFeature = `INSERT INTO features (title, description, icon, order_index)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, icon, order_index;`

	updateFeature = `UPDATE features
		SET title = $1, description = $2, icon = $3, order_index = $4
		WHERE id = $5
		RETURNING id, title, description, icon, order_index;`

	deleteFeature = `DELETE FROM features WHERE id = $1;`

	getSEOByPage = `SELECT page_name, title, description, keywords, og_image, twitter_image, canonical_url
		FROM seo_settings
		WHERE page_name = $1;`

	updateSEOByPage = `UPDATE seo_settings
		SET title = $1, description = $2, keywords = $3, og_image = $4, twitter_image = $5, canonical_url = $6
		WHERE page_name = $7
		RETURNING page_name, title, description, keywords, og_image, twitter_image, canonical_url;`

	createContactMessage = `INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created_at;`

	listContactMessages = `SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListProjectsQuery builds the project listing query, newest first.
func buildListProjectsQuery() (string, []any, error) {
	query, args, err := psql.
		Select("id", "title", "description", "emoji", "github_url", "demo_url", "featured", "technologies").
		From("projects").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListExperienceQuery builds the timeline listing query, newest entry
// first.
func buildListExperienceQuery() (string, []any, error) {
	query, args, err := psql.
		Select("id", "company", "position", "period", "description", "achievements").
		From("experience").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListSkillsQuery builds the skill listing query. Ordering by category
// keeps rows of one category adjacent for grouping in the service layer.
func buildListSkillsQuery() (string, []any, error) {
	query, args, err := psql.
		Select("id", "category", "name", "level", "icon_url", "color").
		From("skills").
		OrderBy("category", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListFeaturesQuery builds the feature listing query, in display order.
func buildListFeaturesQuery() (string, []any, error) {
	query, args, err := psql.
		Select("id", "title", "description", "icon", "order_index").
		From("features").
		OrderBy("order_index", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListSEOSettingsQuery builds the query returning every page's SEO
// record.
func buildListSEOSettingsQuery() (string, []any, error) {
	query, args, err := psql.
		Select("page_name", "title", "description", "keywords", "og_image", "twitter_image", "canonical_url").
		From("seo_settings").
		OrderBy("page_name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertSEOQuery builds the INSERT ... ON CONFLICT query for
// POST /seo/upsert: a new page gets a fresh row, a known page is replaced.
func buildUpsertSEOQuery(setting models.SEOSetting) (string, []any, error) {
	query, args, err := psql.
		Insert("seo_settings").
		Columns("page_name", "title", "description", "keywords", "og_image", "twitter_image", "canonical_url").
		Values(setting.PageName, setting.Title, setting.Description, setting.Keywords, setting.OGImage, setting.TwitterImage, setting.CanonicalURL).
		Suffix(`ON CONFLICT (page_name) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			keywords = EXCLUDED.keywords,
			og_image = EXCLUDED.og_image,
			twitter_image = EXCLUDED.twitter_image,
			canonical_url = EXCLUDED.canonical_url`).
		Suffix("RETURNING page_name, title, description, keywords, og_image, twitter_image, canonical_url").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
