//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var connectOnce sync.Once
var connectErr error

func requireDB(t *testing.T) {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_HOST") == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	connectOnce.Do(func() {
		connectErr = Connect()
		if connectErr != nil {
			return
		}
		os.Setenv("MIGRATIONS_PATH", "../migrations")
		connectErr = MigrationsUp()
	})
	require.NoError(t, connectErr)
}

func createTestUser(t *testing.T) *User {
	t.Helper()

	tag := uuid.New().String()[:8]

	var user *User
	err := WithTx(context.Background(), "create test user", func(tx *sqlx.Tx) error {
		var err error
		user, err = CreateUser("user_"+tag, tag+"@test.local", "password123", tx)
		return err
	})
	require.NoError(t, err)

	t.Cleanup(func() { DeleteUser(user.Id) })

	return user
}

func createTestPost(t *testing.T, author *User, groupId *int64, text string) *Post {
	t.Helper()

	post := &Post{Text: text, AuthorId: author.Id, GroupId: groupId}
	err := WithTx(context.Background(), "create test post", func(tx *sqlx.Tx) error {
		return CreatePost(post, tx)
	})
	require.NoError(t, err)

	return post
}

func TestDeletingGroupClearsPostReference(t *testing.T) {
	requireDB(t)

	author := createTestUser(t)

	tag := uuid.New().String()[:8]
	group, err := CreateGroup("Test group "+tag, "test-group-"+tag, "temp group")
	require.NoError(t, err)

	post := createTestPost(t, author, &group.Id, "post in a doomed group")

	require.NoError(t, DeleteGroup(group.Id))

	got, err := GetPost(post.Id)
	require.NoError(t, err)
	require.NotNil(t, got, "post must survive group deletion")
	assert.Nil(t, got.GroupId, "group reference must be cleared")
}

func TestDeletingUserCascades(t *testing.T) {
	requireDB(t)

	author := createTestUser(t)
	commenter := createTestUser(t)

	post := createTestPost(t, author, nil, "a post by a doomed user")

	_, err := CreateComment(post.Id, commenter.Id, "a comment by a doomed user")
	require.NoError(t, err)

	require.NoError(t, DeleteUser(author.Id))

	got, err := GetPost(post.Id)
	require.NoError(t, err)
	assert.Nil(t, got, "posts must be deleted with their author")

	require.NoError(t, DeleteUser(commenter.Id))

	var count int
	err = Conn.QueryRow("SELECT COUNT(*) FROM comments WHERE author_id = $1", commenter.Id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "comments must be deleted with their author")
}

func TestAuthorPaginationSplitsNineteenPosts(t *testing.T) {
	requireDB(t)

	author := createTestUser(t)

	for i := 0; i < 19; i++ {
		createTestPost(t, author, nil, fmt.Sprintf("post %d", i))
	}

	count, err := CountPostsByAuthor(author.Id)
	require.NoError(t, err)
	assert.Equal(t, 19, count)

	first, err := ListPostsByAuthor(author.Id, 10, 0)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := ListPostsByAuthor(author.Id, 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 9)

	// newest first
	assert.Equal(t, "post 18", first[0].Text)
}

func TestDuplicateFollowCreatesOneRow(t *testing.T) {
	requireDB(t)

	follower := createTestUser(t)
	author := createTestUser(t)

	require.NoError(t, CreateFollow(follower.Id, author.Id))
	require.NoError(t, CreateFollow(follower.Id, author.Id))

	var count int
	err := Conn.QueryRow("SELECT COUNT(*) FROM follows WHERE user_id = $1 AND author_id = $2", follower.Id, author.Id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// following yourself is a no-op
	require.NoError(t, CreateFollow(follower.Id, follower.Id))
	following, err := IsFollowing(follower.Id, follower.Id)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowFeedListsFollowedAuthorsOnly(t *testing.T) {
	requireDB(t)

	reader := createTestUser(t)
	followed := createTestUser(t)
	stranger := createTestUser(t)

	followedPost := createTestPost(t, followed, nil, "from a followed author")
	createTestPost(t, stranger, nil, "from a stranger")

	require.NoError(t, CreateFollow(reader.Id, followed.Id))

	count, err := CountFollowedPosts(reader.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	posts, err := ListFollowedPosts(reader.Id, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, followedPost.Id, posts[0].Id)

	require.NoError(t, DeleteFollow(reader.Id, followed.Id))

	count, err = CountFollowedPosts(reader.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
