package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql"
)

func expectPostLock(mock sqlmock.Sqlmock, postID, authorID int64) {
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(postColumns()).
			AddRow(postID, authorID, nil, "hello-world", "Hello", "body", "PUBLISHED",
				100, 10, 5, 2, now, now, now))
}

func counterRows(likes, comments, bookmarks int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"likes_count", "comments_count", "bookmarks_count"}).
		AddRow(likes, comments, bookmarks)
}

func TestInteractionRepository_ToggleLike_On(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	expectPostLock(mock, 7, 3)
	mock.ExpectQuery("SELECT count(.+) FROM `likes` WHERE post_id = (.+) AND user_id = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `likes`").
		WillReturnResult(sqlmock.NewResult(55, 1))
	mock.ExpectExec("UPDATE `posts` SET `likes_count`=likes_count \\+ 1 WHERE id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = (.+)").
		WillReturnRows(counterRows(11, 5, 2))
	mock.ExpectCommit()

	repo := mysql.NewInteractionRepository(gdb)
	res, err := repo.ToggleLike(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(3), res.PostAuthorID)
	assert.Equal(t, int64(11), res.LikesCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_ToggleLike_Off(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	expectPostLock(mock, 7, 3)
	mock.ExpectQuery("SELECT count(.+) FROM `likes` WHERE post_id = (.+) AND user_id = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("DELETE FROM `likes` WHERE post_id = (.+) AND user_id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// The decrement carries its own floor so the counter cannot go negative
	// even if a batch adjustment raced it outside the lock.
	mock.ExpectExec("UPDATE `posts` SET `likes_count`=likes_count - 1 WHERE id = (.+) AND likes_count > 0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = (.+)").
		WillReturnRows(counterRows(9, 5, 2))
	mock.ExpectCommit()

	repo := mysql.NewInteractionRepository(gdb)
	res, err := repo.ToggleLike(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(9), res.LikesCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_ToggleLike_MissingPost(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(postColumns()))
	mock.ExpectRollback()

	repo := mysql.NewInteractionRepository(gdb)
	_, err := repo.ToggleLike(context.Background(), 404, 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_ToggleBookmark_On(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	expectPostLock(mock, 7, 3)
	mock.ExpectQuery("SELECT count(.+) FROM `bookmarks` WHERE post_id = (.+) AND user_id = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `bookmarks`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE `posts` SET `bookmarks_count`=bookmarks_count \\+ 1 WHERE id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = (.+)").
		WillReturnRows(counterRows(10, 5, 3))
	mock.ExpectCommit()

	repo := mysql.NewInteractionRepository(gdb)
	res, err := repo.ToggleBookmark(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(3), res.BookmarksCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
