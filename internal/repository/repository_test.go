package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logging"
	"github.com/yukikurage/todo-api/internal/models"
)

// RepositoryTestSuite runs the GORM repositories against in-memory SQLite
type RepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	users UserRepository
	tasks TaskRepository
	ctx   context.Context
}

func (suite *RepositoryTestSuite) SetupTest() {
	var err error

	suite.db, err = database.Open(sqlite.Open(":memory:"), "silent")
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.Migrate(suite.db, logging.Discard()))

	suite.users = NewUserRepository(suite.db)
	suite.tasks = NewTaskRepository(suite.db)
	suite.ctx = context.Background()
}

func (suite *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RepositoryTestSuite) createUser(email string) *models.User {
	user := &models.User{Name: "user", Email: email, PasswordHash: "hash"}
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	return user
}

func (suite *RepositoryTestSuite) createTask(ownerID uint64, description string) *models.Task {
	task := &models.Task{Description: description, OwnerID: ownerID}
	suite.Require().NoError(suite.tasks.Create(suite.ctx, task))
	return task
}

func (suite *RepositoryTestSuite) TestUserCreate_DuplicateEmail() {
	suite.createUser("a@x.com")

	err := suite.users.Create(suite.ctx, &models.User{Name: "other", Email: "a@x.com", PasswordHash: "hash"})
	suite.ErrorIs(err, ErrDuplicateEmail)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *RepositoryTestSuite) TestUserFindByEmail() {
	user := suite.createUser("a@x.com")

	found, err := suite.users.FindByEmail(suite.ctx, "a@x.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.users.FindByEmail(suite.ctx, "missing@x.com")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *RepositoryTestSuite) TestUserFindByID() {
	user := suite.createUser("a@x.com")

	found, err := suite.users.FindByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("a@x.com", found.Email)

	_, err = suite.users.FindByID(suite.ctx, user.ID+100)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *RepositoryTestSuite) TestTaskCreate_DefaultsToIncomplete() {
	owner := suite.createUser("a@x.com")
	task := suite.createTask(owner.ID, "buy milk")

	suite.NotZero(task.ID)

	found, err := suite.tasks.FindByOwner(suite.ctx, owner.ID, task.ID)
	suite.Require().NoError(err)
	suite.False(found.Completed)
	suite.Equal("buy milk", found.Description)
}

func (suite *RepositoryTestSuite) TestListByOwner_InsertionOrderAndIsolation() {
	alice := suite.createUser("alice@x.com")
	bob := suite.createUser("bob@x.com")

	first := suite.createTask(alice.ID, "first")
	suite.createTask(bob.ID, "bob's")
	second := suite.createTask(alice.ID, "second")

	tasks, err := suite.tasks.ListByOwner(suite.ctx, alice.ID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	suite.Equal(first.ID, tasks[0].ID)
	suite.Equal(second.ID, tasks[1].ID)

	tasks, err = suite.tasks.ListByOwner(suite.ctx, bob.ID+100)
	suite.Require().NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)
}

func (suite *RepositoryTestSuite) TestFindByOwner_OtherOwnerIsNotFound() {
	alice := suite.createUser("alice@x.com")
	bob := suite.createUser("bob@x.com")
	task := suite.createTask(alice.ID, "secret")

	_, err := suite.tasks.FindByOwner(suite.ctx, bob.ID, task.ID)
	suite.ErrorIs(err, ErrNotFound)

	_, err = suite.tasks.FindByOwner(suite.ctx, alice.ID, task.ID+100)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *RepositoryTestSuite) TestUpdate_WritesFieldsButNotOwner() {
	alice := suite.createUser("alice@x.com")
	bob := suite.createUser("bob@x.com")
	task := suite.createTask(alice.ID, "old")

	task.Description = "new"
	task.Completed = true
	suite.Require().NoError(suite.tasks.Update(suite.ctx, task))

	found, err := suite.tasks.FindByOwner(suite.ctx, alice.ID, task.ID)
	suite.Require().NoError(err)
	suite.Equal("new", found.Description)
	suite.True(found.Completed)

	found.Completed = false
	suite.Require().NoError(suite.tasks.Update(suite.ctx, found))
	reloaded, err := suite.tasks.FindByOwner(suite.ctx, alice.ID, task.ID)
	suite.Require().NoError(err)
	suite.False(reloaded.Completed)

	// A forged owner on the struct does not move the row
	reloaded.OwnerID = bob.ID
	reloaded.Description = "hijacked"
	suite.Require().NoError(suite.tasks.Update(suite.ctx, reloaded))

	_, err = suite.tasks.FindByOwner(suite.ctx, bob.ID, task.ID)
	suite.ErrorIs(err, ErrNotFound)
	still, err := suite.tasks.FindByOwner(suite.ctx, alice.ID, task.ID)
	suite.Require().NoError(err)
	suite.Equal("new", still.Description)
}

func (suite *RepositoryTestSuite) TestDeleteByOwner() {
	alice := suite.createUser("alice@x.com")
	bob := suite.createUser("bob@x.com")
	task := suite.createTask(alice.ID, "doomed")

	suite.ErrorIs(suite.tasks.DeleteByOwner(suite.ctx, bob.ID, task.ID), ErrNotFound)

	suite.Require().NoError(suite.tasks.DeleteByOwner(suite.ctx, alice.ID, task.ID))
	suite.ErrorIs(suite.tasks.DeleteByOwner(suite.ctx, alice.ID, task.ID), ErrNotFound)

	_, err := suite.tasks.FindByOwner(suite.ctx, alice.ID, task.ID)
	suite.ErrorIs(err, ErrNotFound)

	tasks, err := suite.tasks.ListByOwner(suite.ctx, alice.ID)
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

func (suite *RepositoryTestSuite) TestSearch() {
	alice := suite.createUser("alice@x.com")
	bob := suite.createUser("bob@x.com")
	suite.createTask(alice.ID, "buy milk")
	suite.createTask(alice.ID, "walk the dog")
	suite.createTask(bob.ID, "Milk the cow")

	tasks, err := suite.tasks.Search(suite.ctx, alice.ID, "MILK")
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal("buy milk", tasks[0].Description)

	tasks, err = suite.tasks.Search(suite.ctx, bob.ID, "dog")
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

func (suite *RepositoryTestSuite) TestSearch_NonASCIITerm() {
	alice := suite.createUser("alice@x.com")
	suite.createTask(alice.ID, "CAFÉ visit")
	suite.createTask(alice.ID, "café au lait")

	tasks, err := suite.tasks.Search(suite.ctx, alice.ID, "CAFÉ")
	suite.Require().NoError(err)
	suite.Require().NotEmpty(tasks)
	suite.Equal("CAFÉ visit", tasks[0].Description)

	tasks, err = suite.tasks.Search(suite.ctx, alice.ID, "café")
	suite.Require().NoError(err)
	suite.Require().NotEmpty(tasks)
	suite.Contains(descriptions(tasks), "café au lait")
}

func (suite *RepositoryTestSuite) TestSearch_TermIsLiteral() {
	alice := suite.createUser("alice@x.com")
	suite.createTask(alice.ID, "buy milk")

	tasks, err := suite.tasks.Search(suite.ctx, alice.ID, "k ")
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

func descriptions(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Description
	}
	return out
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
