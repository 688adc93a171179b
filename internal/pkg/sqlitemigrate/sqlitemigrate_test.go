package sqlitemigrate_test

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/fight-tracker/internal/pkg/sqlitemigrate"
)

type MigrateTestSuite struct {
	suite.Suite
	db  *sql.DB
	ctx context.Context
}

func (s *MigrateTestSuite) SetupTest() {
	db, err := sql.Open("sqlite", ":memory:")
	s.Require().NoError(err)
	// every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	s.db = db
	s.ctx = context.Background()
}

func (s *MigrateTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *MigrateTestSuite) count(query string) int {
	var n int
	s.Require().NoError(s.db.QueryRow(query).Scan(&n))
	return n
}

func (s *MigrateTestSuite) TestApply() {
	s.Run("records applied files", func() {
		migrations := fstest.MapFS{
			"0001_items.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		}

		s.Require().NoError(sqlitemigrate.Apply(s.ctx, s.db, migrations, ""))
		s.Equal(1, s.count("SELECT COUNT(*) FROM schema_migrations"))
		s.Equal(1, s.count("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='items'"))
	})

	s.Run("skips files already applied", func() {
		migrations := fstest.MapFS{
			"0001_items.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);")},
			"0002_more.sql":  &fstest.MapFile{Data: []byte("CREATE TABLE more_items(id TEXT PRIMARY KEY);")},
		}

		s.Require().NoError(sqlitemigrate.Apply(s.ctx, s.db, migrations, ""))
		s.Require().NoError(sqlitemigrate.Apply(s.ctx, s.db, migrations, ""))
		s.Equal(2, s.count("SELECT COUNT(*) FROM schema_migrations"))
	})

	s.Run("failed file is not recorded", func() {
		bad := fstest.MapFS{
			"0003_bad.sql": &fstest.MapFile{Data: []byte("CREAT TABLE nope(id INT);")},
		}

		s.Error(sqlitemigrate.Apply(s.ctx, s.db, bad, ""))
		s.Equal(0, s.count("SELECT COUNT(*) FROM schema_migrations WHERE name = '0003_bad.sql'"))
	})

	s.Run("reads from a sub directory", func() {
		migrations := fstest.MapFS{
			"sub/0001_sub.sql": &fstest.MapFile{Data: []byte("CREATE TABLE sub_rows(id TEXT PRIMARY KEY);")},
		}

		s.Require().NoError(sqlitemigrate.Apply(s.ctx, s.db, migrations, "sub"))
		s.Equal(1, s.count("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='sub_rows'"))
	})
}

func (s *MigrateTestSuite) TestApplyRequiresDB() {
	s.Error(sqlitemigrate.Apply(s.ctx, nil, fstest.MapFS{}, ""))
}

func (s *MigrateTestSuite) TestExtractUp() {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(id INT);", want: "CREATE TABLE a(id INT);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(id INT);", want: "\nCREATE TABLE a(id INT);"},
		{name: "up and down", content: "-- +migrate Up\nCREATE TABLE a(id INT);\n-- +migrate Down\nDROP TABLE a;", want: "\nCREATE TABLE a(id INT);\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, sqlitemigrate.ExtractUp(tc.content))
		})
	}
}

func TestMigrateTestSuite(t *testing.T) {
	suite.Run(t, new(MigrateTestSuite))
}
