package todotests

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type fakeTodo struct {
	ID        int    `json:"-"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
	URL       string `json:"url"`
}

type fakeTodoUpdate struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Order     *int    `json:"order"`
}

// fakeTodoService is a minimal Todo-Backend implementation. The flags make it misbehave in
// specific ways so we can check that the suite notices.
type fakeTodoService struct {
	noCORS        bool
	noLocation    bool
	ignoreDeletes bool
	ignoreUpdates bool
	wrongTitle    bool
	failDeletes   bool
	// corsOnlyForPreflight sends CORS headers only when Access-Control-Request-Method is set.
	corsOnlyForPreflight bool

	items  map[int]*fakeTodo
	nextID int
	lock   sync.Mutex
}

func newFakeTodoService() *fakeTodoService {
	return &fakeTodoService{items: make(map[int]*fakeTodo), nextID: 1}
}

func (s *fakeTodoService) count() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.items)
}

func (s *fakeTodoService) add(title string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.items[s.nextID] = &fakeTodo{ID: s.nextID, Title: title}
	s.nextID++
}

func (s *fakeTodoService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.noCORS && (!s.corsOnlyForPreflight || r.Header.Get("Access-Control-Request-Method") != "") {
		w.Header().Set("access-control-allow-origin", "*")
		w.Header().Set("access-control-allow-methods", "GET, POST, PUT, PATCH, DELETE")
		w.Header().Set("access-control-allow-headers", "accept, content-type")
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.URL.Path == "/todos" {
		s.serveCollection(w, r)
		return
	}
	if !strings.HasPrefix(r.URL.Path, "/todos/") {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/todos/"))
	if err != nil {
		http.Error(w, "Invalid Id", http.StatusBadRequest)
		return
	}
	s.serveItem(w, r, id)
}

func (s *fakeTodoService) serveCollection(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch r.Method {
	case http.MethodGet:
		ids := make([]int, 0, len(s.items))
		for id := range s.items {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		list := make([]*fakeTodo, 0, len(ids))
		for _, id := range ids {
			list = append(list, s.items[id])
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var update fakeTodoUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		item := &fakeTodo{ID: s.nextID}
		s.nextID++
		item.URL = "http://" + r.Host + "/todos/" + strconv.Itoa(item.ID)
		applyUpdate(item, update)
		if s.wrongTitle {
			item.Title = "something else"
		}
		s.items[item.ID] = item
		if !s.noLocation {
			w.Header().Set("Location", item.URL)
		}
		writeJSON(w, http.StatusCreated, item)
	case http.MethodDelete:
		s.items = make(map[int]*fakeTodo)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (s *fakeTodoService) serveItem(w http.ResponseWriter, r *http.Request, id int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	item := s.items[id]
	if item == nil {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, item)
	case http.MethodPut, http.MethodPatch:
		var update fakeTodoUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if !s.ignoreUpdates {
			applyUpdate(item, update)
		}
		writeJSON(w, http.StatusOK, item)
	case http.MethodDelete:
		if s.failDeletes {
			http.Error(w, "storage unavailable", http.StatusInternalServerError)
			return
		}
		if !s.ignoreDeletes {
			delete(s.items, id)
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func applyUpdate(item *fakeTodo, update fakeTodoUpdate) {
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Completed != nil {
		item.Completed = *update.Completed
	}
	if update.Order != nil {
		item.Order = *update.Order
	}
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
