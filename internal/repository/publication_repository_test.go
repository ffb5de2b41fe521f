package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-generator/internal/domain"
	"article-generator/internal/repository"
)

func TestPostgresPublicationRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPublicationRepository(testDB.Pool)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	publication := func(userID string, postID int64, at time.Time) *domain.Publication {
		return &domain.Publication{
			UserID:      userID,
			UserEmail:   userID + "@hospitalityfn.test",
			PostID:      postID,
			EditURL:     "https://cms.test/wp-admin/post.php?action=edit",
			Headline:    "Goat Hired",
			ArticleType: "breaking-news",
			CreatedAt:   at,
		}
	}

	t.Run("create assigns an id and list returns it", func(t *testing.T) {
		testDB.TruncateTables(t, "publications")

		p := publication("user-a", 1, base)
		require.NoError(t, repo.Create(ctx, p))
		assert.NotEmpty(t, p.ID)

		got, err := repo.ListByUser(ctx, "user-a", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, p.ID, got[0].ID)
		assert.Equal(t, int64(1), got[0].PostID)
		assert.Equal(t, "breaking-news", got[0].ArticleType)
		assert.True(t, base.Equal(got[0].CreatedAt))
	})

	t.Run("list is newest first, per user and limited", func(t *testing.T) {
		testDB.TruncateTables(t, "publications")

		for i := int64(0); i < 4; i++ {
			require.NoError(t, repo.Create(ctx, publication("user-a", 10+i, base.Add(time.Duration(i)*time.Hour))))
		}
		require.NoError(t, repo.Create(ctx, publication("user-b", 99, base)))

		got, err := repo.ListByUser(ctx, "user-a", 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, int64(13), got[0].PostID)
		assert.Equal(t, int64(12), got[1].PostID)
		assert.Equal(t, int64(11), got[2].PostID)
	})

	t.Run("missing article type round-trips as empty", func(t *testing.T) {
		testDB.TruncateTables(t, "publications")

		p := publication("user-c", 20, base)
		p.ArticleType = ""
		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.ListByUser(ctx, "user-c", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].ArticleType)
	})

	t.Run("duplicate post is reported", func(t *testing.T) {
		testDB.TruncateTables(t, "publications")

		require.NoError(t, repo.Create(ctx, publication("user-a", 30, base)))
		err := repo.Create(ctx, publication("user-a", 30, base))

		assert.ErrorIs(t, err, repository.ErrDuplicatePublication)
	})

	t.Run("unknown user has no publications", func(t *testing.T) {
		got, err := repo.ListByUser(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
