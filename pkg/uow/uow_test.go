package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

const (
	fooRepoName RepositoryName = "foo"
	barRepoName RepositoryName = "bar"
)

type fooRepo struct{ db DBTX }
type barRepo struct{ db DBTX }

type UnitOfWorkTestSuite struct {
	suite.Suite
	uow *UnitOfWork
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	// Пул не нужен: до соединения дело доходит только в Do.
	s.uow = NewUnitOfWork(nil)
	s.Require().NoError(s.uow.Register(fooRepoName, func(db DBTX) Repository {
		return &fooRepo{db: db}
	}))
}

func (s *UnitOfWorkTestSuite) TestRegisterDuplicate() {
	err := s.uow.Register(fooRepoName, func(db DBTX) Repository {
		return &fooRepo{db: db}
	})
	s.Require().ErrorIs(err, ErrRepositoryAlreadyRegistered)
}

func (s *UnitOfWorkTestSuite) TestGetRepository() {
	repo, err := s.uow.GetRepository(fooRepoName)
	s.Require().NoError(err)
	s.IsType(&fooRepo{}, repo)

	_, err = s.uow.GetRepository(barRepoName)
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *UnitOfWorkTestSuite) TestGetRepositoryAs() {
	repo, err := GetRepositoryAs[*fooRepo](s.uow, fooRepoName)
	s.Require().NoError(err)
	s.NotNil(repo)

	// Зарегистрированная фабрика отдает не тот тип, который просит вызывающий.
	_, err = GetRepositoryAs[*barRepo](s.uow, fooRepoName)
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)

	_, err = GetRepositoryAs[*fooRepo](s.uow, barRepoName)
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *UnitOfWorkTestSuite) TestTransactionGet() {
	tx := newTransaction(nil, s.uow.repositories)

	repo, err := tx.Get(fooRepoName)
	s.Require().NoError(err)
	s.IsType(&fooRepo{}, repo)

	_, err = tx.Get(barRepoName)
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *UnitOfWorkTestSuite) TestGetAs() {
	tx := newTransaction(nil, s.uow.repositories)

	repo, err := GetAs[*fooRepo](tx, fooRepoName)
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetAs[*barRepo](tx, fooRepoName)
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)

	_, err = GetAs[*fooRepo](tx, barRepoName)
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}
