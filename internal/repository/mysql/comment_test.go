package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql"
)

func TestCommentRepository_Store_IncrementsCount(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	expectPostLock(mock, 7, 3)
	mock.ExpectExec("INSERT INTO `comments`").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("UPDATE `posts` SET `comments_count`=comments_count \\+ 1 WHERE id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := mysql.NewCommentRepository(gdb)
	comment := &domain.Comment{PostID: 7, UserID: 42, Content: "nice read"}
	err := repo.Store(context.Background(), comment)

	require.NoError(t, err)
	assert.Equal(t, int64(21), comment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_DeleteSubtree_RemovesExactCount(t *testing.T) {
	gdb, mock := newMockDB(t)

	// Root 10 has replies 11 and 12; the delete must remove all three rows
	// and take the counter down by exactly that number.
	mock.ExpectBegin()
	expectPostLock(mock, 7, 3)
	mock.ExpectQuery("SELECT `id` FROM `comments` WHERE parent_id IN (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))
	mock.ExpectQuery("SELECT `id` FROM `comments` WHERE parent_id IN (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `comments` WHERE id IN (.+)").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE `posts` SET `comments_count`=comments_count - (.+) WHERE id = (.+) AND comments_count >= (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := mysql.NewCommentRepository(gdb)
	removed, err := repo.DeleteSubtree(context.Background(), &domain.Comment{ID: 10, PostID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_DeleteSubtree_AlreadyGone(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	expectPostLock(mock, 7, 3)
	mock.ExpectQuery("SELECT `id` FROM `comments` WHERE parent_id IN (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `comments` WHERE id IN (.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := mysql.NewCommentRepository(gdb)
	_, err := repo.DeleteSubtree(context.Background(), &domain.Comment{ID: 10, PostID: 7})

	// Zero deleted rows means someone else removed the subtree first; the
	// counter must stay untouched.
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
