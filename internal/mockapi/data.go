package mockapi

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"reelops/internal/genres"
	"reelops/internal/movies"
	"reelops/internal/users"
)

// pageSize is the fixed page size for every list endpoint.
const pageSize = 10

// SeedAdminEmail and SeedAdminPassword are the credentials of the seeded
// admin account.
const (
	SeedAdminEmail    = "admin@reelops.dev"
	SeedAdminPassword = "admin123"
)

// userRecord pairs the public user shape with its password hash.
type userRecord struct {
	users.User
	passwordHash []byte
}

// memoryStore holds all mock data behind one mutex; the mock favors
// simplicity over granular locking.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*userRecord
	movies map[int64]*movies.Movie
	genres map[int64]*genres.Genre
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		nextID: 1,
		users:  make(map[int64]*userRecord),
		movies: make(map[int64]*movies.Movie),
		genres: make(map[int64]*genres.Genre),
	}
	s.seed()
	return s
}

func (s *memoryStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memoryStore) seed() {
	now := time.Now().UTC()
	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	admin := &userRecord{
		User: users.User{
			ID: s.id(), FirstName: "Admin", LastName: "User",
			Email: SeedAdminEmail, Role: "admin", AccountStatus: users.StatusActive,
			CreatedAt: now, UpdatedAt: now,
		},
		passwordHash: hash,
	}
	s.users[admin.ID] = admin

	drama := &genres.Genre{ID: s.id(), Name: "Drama", CreatedAt: now, UpdatedAt: now}
	scifi := &genres.Genre{ID: s.id(), Name: "Science Fiction", CreatedAt: now, UpdatedAt: now}
	s.genres[drama.ID] = drama
	s.genres[scifi.ID] = scifi

	first := &movies.Movie{
		ID: s.id(), Title: "Orbit Decay", ContentType: movies.ContentTypeMovie,
		Description: "A station crew rides out a failing orbit.", MaturityRating: "PG-13",
		ReleaseYear: 2023, Duration: "2h 11m", Director: "R. Voss",
		Genres:    []movies.GenreRef{{ID: scifi.ID, Name: scifi.Name}},
		CreatedAt: now, UpdatedAt: now,
	}
	s.movies[first.ID] = first
}

func (s *memoryStore) findUser(id int64) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *memoryStore) findUserByEmail(email string) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return nil, false
}

// listQuery captures the common list parameters.
type listQuery struct {
	page        int
	sortBy      string
	direction   string
	query       string
	status      string
	contentType string
	fetchAll    bool
}

func parseListQuery(values map[string][]string) listQuery {
	get := func(key string) string {
		if v, ok := values[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}
	page, _ := strconv.Atoi(get("page"))
	if page < 1 {
		page = 1
	}
	return listQuery{
		page:        page,
		sortBy:      get("sortBy"),
		direction:   get("direction"),
		query:       strings.ToLower(get("query")),
		status:      get("status"),
		contentType: get("contentType"),
		fetchAll:    get("fetchAll") == "true",
	}
}

// paginate slices one page out of ids already in sort order.
func paginate[T any](items []T, page int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// sortSlice orders items by the given key extractor, descending when asked.
func sortSlice[T any](items []T, desc bool, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
