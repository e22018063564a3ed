package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"philcali.me/recipebook/internal/data"
)

type RequestLog struct {
	Method string
	Path   string
	Body   string
}

// LocalRecipeServer is an in-memory stand-in for the remote recipe store.
// Failures maps "METHOD" or "METHOD /id" to a status code to reply with.
type LocalRecipeServer struct {
	Server   *httptest.Server
	Failures map[string]int
	Requests []RequestLog
	Records  []data.Recipe
	NextId   int
	mutex    sync.Mutex
}

func (ls *LocalRecipeServer) URL() string {
	return ls.Server.URL + "/api/"
}

func (ls *LocalRecipeServer) Fail(key string, statusCode int) {
	ls.mutex.Lock()
	defer ls.mutex.Unlock()
	ls.Failures[key] = statusCode
}

func (ls *LocalRecipeServer) RequestCount() int {
	ls.mutex.Lock()
	defer ls.mutex.Unlock()
	return len(ls.Requests)
}

func _writeJSON(w http.ResponseWriter, statusCode int, thing any) {
	body, err := json.Marshal(thing)
	if err != nil {
		w.WriteHeader(500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func (ls *LocalRecipeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ls.mutex.Lock()
	defer ls.mutex.Unlock()
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api"), "/")
	var payload data.RecipeInput
	var raw string
	if r.Body != nil {
		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(&payload); err == nil {
			encoded, _ := json.Marshal(payload)
			raw = string(encoded)
		}
	}
	ls.Requests = append(ls.Requests, RequestLog{Method: r.Method, Path: r.URL.Path, Body: raw})
	for _, key := range []string{r.Method, r.Method + " /" + id} {
		if code, ok := ls.Failures[key]; ok {
			_writeJSON(w, code, map[string]string{"message": "injected failure"})
			return
		}
	}
	switch {
	case r.Method == http.MethodGet && id == "":
		_writeJSON(w, 200, ls.Records)
	case r.Method == http.MethodPost && id == "":
		ls.NextId++
		created := data.Recipe{
			Id:          fmt.Sprintf("%d", ls.NextId),
			Recipe:      payload.Recipe,
			Ingredients: payload.Ingredients,
			Cuisine:     payload.Cuisine,
		}
		ls.Records = append(ls.Records, created)
		_writeJSON(w, 200, created)
	case r.Method == http.MethodPut && id != "":
		for i, record := range ls.Records {
			if record.Id == id {
				ls.Records[i] = data.Recipe{
					Id:          id,
					Recipe:      payload.Recipe,
					Ingredients: payload.Ingredients,
					Cuisine:     payload.Cuisine,
				}
				_writeJSON(w, 200, ls.Records[i])
				return
			}
		}
		_writeJSON(w, 404, map[string]string{"message": "not found"})
	case r.Method == http.MethodDelete && id != "":
		for i, record := range ls.Records {
			if record.Id == id {
				ls.Records = append(ls.Records[:i], ls.Records[i+1:]...)
				w.WriteHeader(204)
				return
			}
		}
		_writeJSON(w, 404, map[string]string{"message": "not found"})
	default:
		_writeJSON(w, 405, map[string]string{"message": "method not allowed"})
	}
}

func StartLocalServer(t *testing.T, seed ...data.Recipe) *LocalRecipeServer {
	local := &LocalRecipeServer{
		Failures: make(map[string]int),
		Records:  append([]data.Recipe{}, seed...),
		NextId:   len(seed),
	}
	local.Server = httptest.NewServer(local)
	t.Cleanup(local.Server.Close)
	return local
}
