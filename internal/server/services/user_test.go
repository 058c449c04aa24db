package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cloudvault/internal/common"
	"github.com/dmitrijs2005/cloudvault/internal/dbx"
	"github.com/dmitrijs2005/cloudvault/internal/server/auth"
	"github.com/dmitrijs2005/cloudvault/internal/server/config"
	"github.com/dmitrijs2005/cloudvault/internal/server/models"
	filesrepo "github.com/dmitrijs2005/cloudvault/internal/server/repositories/files"
	usersrepo "github.com/dmitrijs2005/cloudvault/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	exists    bool
	existsErr error

	listOut []*models.User
	listErr error

	lastSearch string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeUsersRepo) ListOthers(ctx context.Context, excludeID int64, search string) ([]*models.User, error) {
	f.lastSearch = search
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.User
	for _, u := range f.listOut {
		if u.ID != excludeID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	users usersrepo.Repository
	files filesrepo.Repository
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return f.users }
func (f *fakeRepoManager) Files(db dbx.DBTX) filesrepo.Repository             { return f.files }

func newUserService(t *testing.T, db *sql.DB, users usersrepo.Repository) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, &fakeRepoManager{users: users}, auth.NewHasher(bcrypt.MinCost), cfg)
}

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	h, err := auth.NewHasher(bcrypt.MinCost).Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	return h
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeUsersRepo{}
	svc := newUserService(t, db, repo)

	u, err := svc.Register(context.Background(), "alice", "alice@x.com", "p1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID != 1 || u.Email != "alice@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "" || u.PasswordHash == "p1" {
		t.Fatalf("password must be stored hashed, got %q", u.PasswordHash)
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Fatal("timestamps must be stamped on registration")
	}
}

func TestRegister_DuplicateEmail_Precheck(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeUsersRepo{exists: true}
	svc := newUserService(t, db, repo)

	_, err := svc.Register(context.Background(), "alice", "alice@x.com", "p1")
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegister_DuplicateEmail_InsertRace(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	// pre-check passes, but the unique index rejects the concurrent insert
	repo := &fakeUsersRepo{createErr: common.ErrDuplicateEmail}
	svc := newUserService(t, db, repo)

	_, err := svc.Register(context.Background(), "alice", "alice@x.com", "p1")
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegister_RepoError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeUsersRepo{createErr: errors.New("db down")}
	svc := newUserService(t, db, repo)

	_, err := svc.Register(context.Background(), "alice", "alice@x.com", "p1")
	if err == nil || errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected generic error, got %v", err)
	}
}

// --- Login ---

func TestLogin_Success_TokenBindsEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	stored := &models.User{ID: 7, UserName: "alice", Email: "alice@x.com", PasswordHash: mustHash(t, "p1")}
	svc := newUserService(t, db, &fakeUsersRepo{getOut: stored})

	token, user, err := svc.Login(context.Background(), "alice@x.com", "p1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := auth.GetEmailFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("token verify error: %v", err)
	}
	if subject != "alice@x.com" {
		t.Fatalf("token subject = %q, want caller email", subject)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	stored := &models.User{Email: "alice@x.com", PasswordHash: mustHash(t, "p1")}
	svc := newUserService(t, db, &fakeUsersRepo{getOut: stored})

	token, _, err := svc.Login(context.Background(), "alice@x.com", "wrong")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if token != "" {
		t.Fatal("no token must be issued on bad credentials")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := newUserService(t, db, &fakeUsersRepo{getErr: common.ErrNotFound})

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "p1")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := newUserService(t, db, &fakeUsersRepo{getErr: errors.New("db down")})

	_, _, err := svc.Login(context.Background(), "alice@x.com", "p1")
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// --- ListOthers ---

func TestListOthers_ExcludesCaller(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeUsersRepo{listOut: []*models.User{
		{ID: 1, UserName: "alice"},
		{ID: 2, UserName: "bob"},
		{ID: 3, UserName: "carol"},
	}}
	svc := newUserService(t, db, repo)

	got, err := svc.ListOthers(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("ListOthers error: %v", err)
	}
	for _, u := range got {
		if u.ID == 1 {
			t.Fatalf("caller must be excluded, got %+v", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
}

func TestListOthers_EmptyPopulation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := newUserService(t, db, &fakeUsersRepo{})

	got, err := svc.ListOthers(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("ListOthers error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no users, got %+v", got)
	}
}
