package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sangini/internal/app/composer"
	"sangini/internal/app/consult"
	"sangini/internal/app/feed"
	"sangini/internal/app/programs"
	"sangini/internal/app/storage"
	"sangini/internal/configs"
	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/resp"
)

const testSecret = "test-secret"

// fakeImageStore treats every presigned key as uploaded and fabricates URLs.
type fakeImageStore struct {
	objects map[string]string
	deleted []string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{objects: make(map[string]string)}
}

func (f *fakeImageStore) PresignUpload(_ context.Context, key, mimeType string, _ int64, _ time.Duration) (string, error) {
	f.objects[key] = mimeType
	return "https://uploads.test/" + key, nil
}

func (f *fakeImageStore) PresignDownload(_ context.Context, key string, _ time.Duration) (string, error) {
	if _, ok := f.objects[key]; !ok {
		return "", storage.ErrObjectNotFound
	}
	return "https://views.test/" + key, nil
}

func (f *fakeImageStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeImageStore) ObjectMetadata(_ context.Context, key string) (map[string]string, error) {
	mimeType, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return map[string]string{"contentType": mimeType}, nil
}

func testDeps(t *testing.T) *AppDeps {
	t.Helper()

	cfg := &configs.AppConfig{
		Environment:         "development",
		JWTSecret:           testSecret,
		AssistantReplyDelay: 10 * time.Millisecond,
	}

	consults := consult.NewManager(cfg)
	t.Cleanup(consults.Shutdown)

	return &AppDeps{
		Config:   cfg,
		Images:   newFakeImageStore(),
		Feed:     feed.NewStore(),
		Programs: programs.NewStore(),
		Consults: consults,
		Composer: composer.NewStore(),
	}
}

func userToken(t *testing.T) string {
	t.Helper()

	token, err := jwt.GenerateToken(&jwt.Payload{
		ID:    "11111111-1111-1111-1111-111111111111",
		Name:  "Asha",
		Email: "asha@example.com",
	}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, resp.JSONResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var envelope resp.JSONResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope %q: %v", rec.Body.String(), err)
	}
	return rec, envelope
}

func TestRequireUserInvokesHandlerOnce(t *testing.T) {
	calls := 0
	guarded := jwt.RequireUser(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	token := userToken(t)

	wrapped := jwt.IdentityExtractorMiddleware(testSecret)(guarded)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireUserBlocksAnonymous(t *testing.T) {
	calls := 0
	guarded := jwt.RequireUser(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if calls != 0 {
		t.Fatalf("handler called %d times, want 0", calls)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var envelope resp.JSONResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok || data["redirect"] != jwt.SignInRedirect {
		t.Fatalf("missing redirect in 401 data: %v", envelope.Data)
	}
}

func TestAnonymousLikeLeavesFeedUnchanged(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/feed/2/like", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok || data["redirect"] != jwt.SignInRedirect {
		t.Fatalf("missing redirect in 401 data: %v", envelope.Data)
	}

	for _, p := range deps.Feed.Posts() {
		if p.ID == "2" && (p.Likes != 89 || !p.IsLiked) {
			t.Fatalf("feed changed by anonymous like: likes=%d liked=%v", p.Likes, p.IsLiked)
		}
	}
}

func TestLikeToggleThroughRouter(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/feed/2/like", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	post := envelope.Data.(map[string]any)["post"].(map[string]any)
	if post["isLiked"] != false || post["likes"] != float64(88) {
		t.Fatalf("after first toggle: %v", post)
	}

	_, envelope = doJSON(t, router, http.MethodPost, "/api/feed/2/like", token, nil)
	post = envelope.Data.(map[string]any)["post"].(map[string]any)
	if post["isLiked"] != true || post["likes"] != float64(89) {
		t.Fatalf("after second toggle: %v", post)
	}
}

func TestProgramJoinThroughRouter(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/programs/1/join", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	program := envelope.Data.(map[string]any)["program"].(map[string]any)
	if program["isJoined"] != true || program["participants"] != float64(46) {
		t.Fatalf("after join: %v", program)
	}

	_, envelope = doJSON(t, router, http.MethodPost, "/api/programs/1/join", token, nil)
	program = envelope.Data.(map[string]any)["program"].(map[string]any)
	if program["isJoined"] != false || program["participants"] != float64(45) {
		t.Fatalf("after leave: %v", program)
	}
}

func TestCommentOnUnknownPostRejected(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/feed/999/comment", token, map[string]string{
		"content": "Great advice!",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("comment status = %d, want 404", rec.Code)
	}
	if envelope.Code != errs.ErrPostNotFound {
		t.Fatalf("comment code = %d, want %d", envelope.Code, errs.ErrPostNotFound)
	}

	rec, envelope = doJSON(t, router, http.MethodPost, "/api/feed/999/report", token, map[string]string{
		"reason": "spam",
	})
	if rec.Code != http.StatusNotFound || envelope.Code != errs.ErrPostNotFound {
		t.Fatalf("report status = %d code = %d, want 404/%d", rec.Code, envelope.Code, errs.ErrPostNotFound)
	}
}

func TestLibraryDiseaseFilterThroughRouter(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/library/diseases?search=nosebleed", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	diseases := envelope.Data.(map[string]any)["diseases"].([]any)
	if len(diseases) != 1 {
		t.Fatalf("got %d diseases, want 1", len(diseases))
	}
	if diseases[0].(map[string]any)["id"] != "hypertension" {
		t.Fatalf("unexpected disease: %v", diseases[0])
	}
}

func TestLibraryDiseaseNotFound(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/library/diseases/unknown", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestConsultIntakeThroughRouter(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/consult/intake", token, map[string]string{
		"name":     "Asha",
		"symptoms": "chest pain when climbing stairs",
		"urgency":  "medium",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	sess := envelope.Data.(map[string]any)["session"].(map[string]any)
	if sess["specialty"] != "cardiology" {
		t.Fatalf("specialty = %v, want cardiology", sess["specialty"])
	}
	if sess["view"] != "chat" {
		t.Fatalf("view = %v, want chat", sess["view"])
	}

	id := sess["id"].(string)
	rec, _ = doJSON(t, router, http.MethodPost, "/api/consult/"+id+"/messages", token, map[string]string{
		"content": "It gets worse at night.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("message status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestConsultNavigateThroughRouter(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	_, envelope := doJSON(t, router, http.MethodPost, "/api/consult/intake", token, map[string]string{
		"name":     "Asha",
		"symptoms": "headache",
	})
	id := envelope.Data.(map[string]any)["session"].(map[string]any)["id"].(string)

	_, envelope = doJSON(t, router, http.MethodPost, "/api/consult/"+id+"/view", token, map[string]string{
		"view": "history",
	})
	if envelope.Code != 0 || envelope.Data.(map[string]any)["view"] != "history" {
		t.Fatalf("navigate to history: code = %d, data = %v", envelope.Code, envelope.Data)
	}

	_, envelope = doJSON(t, router, http.MethodPost, "/api/consult/"+id+"/view", token, map[string]string{
		"view": "history",
	})
	if envelope.Code != errs.ErrInvalidViewTransition {
		t.Fatalf("repeated navigate: code = %d, want %d", envelope.Code, errs.ErrInvalidViewTransition)
	}
}

func TestConsultSessionOwnership(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	_, envelope := doJSON(t, router, http.MethodPost, "/api/consult/intake", token, map[string]string{
		"name":     "Asha",
		"symptoms": "headache",
	})
	id := envelope.Data.(map[string]any)["session"].(map[string]any)["id"].(string)

	other, err := jwt.GenerateToken(&jwt.Payload{ID: "22222222-2222-2222-2222-222222222222", Name: "Ravi"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec, _ := doJSON(t, router, http.MethodGet, "/api/consult/"+id, other, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for foreign session", rec.Code)
	}
}

func TestComposerFlowThroughRouter(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	_, envelope := doJSON(t, router, http.MethodPost, "/api/composer/advance", token, nil)
	if envelope.Code != errs.ErrDraftNeedsImage {
		t.Fatalf("advance without image: code = %d, want %d", envelope.Code, errs.ErrDraftNeedsImage)
	}

	_, envelope = doJSON(t, router, http.MethodPost, "/api/composer/images/presign", token, map[string]any{
		"fileName": "photo.jpg",
		"mimeType": "image/jpeg",
		"fileSize": 1024,
	})
	if envelope.Code != 0 {
		t.Fatalf("presign: code = %d, message = %s", envelope.Code, envelope.Message)
	}
	key := envelope.Data.(map[string]any)["key"].(string)

	_, envelope = doJSON(t, router, http.MethodPost, "/api/composer/images", token, map[string]string{"key": key})
	if envelope.Code != 0 {
		t.Fatalf("attach image: code = %d, message = %s", envelope.Code, envelope.Message)
	}

	_, envelope = doJSON(t, router, http.MethodGet, "/api/composer/", token, nil)
	urls := envelope.Data.(map[string]any)["imageUrls"].([]any)
	if len(urls) != 1 || urls[0] != "https://views.test/"+key {
		t.Fatalf("unexpected image view urls: %v", urls)
	}

	_, envelope = doJSON(t, router, http.MethodPost, "/api/composer/advance", token, nil)
	if envelope.Code != 0 {
		t.Fatalf("advance: code = %d", envelope.Code)
	}
	draft := envelope.Data.(map[string]any)["draft"].(map[string]any)
	if draft["step"] != "details" {
		t.Fatalf("step = %v, want details", draft["step"])
	}

	_, envelope = doJSON(t, router, http.MethodPost, "/api/composer/images", token, map[string]string{
		"key": "drafts/someone-else/photo.jpg",
	})
	if envelope.Code == 0 {
		t.Fatal("foreign image key accepted")
	}
}

func TestComposerAttachRequiresUpload(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	_, envelope := doJSON(t, router, http.MethodPost, "/api/composer/images", token, map[string]string{
		"key": "drafts/11111111-1111-1111-1111-111111111111/never-uploaded.jpg",
	})
	if envelope.Code != errs.ErrImageNotUploaded {
		t.Fatalf("code = %d, want %d", envelope.Code, errs.ErrImageNotUploaded)
	}
}

func TestComposerRemoveImageDeletesObject(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)
	token := userToken(t)

	_, envelope := doJSON(t, router, http.MethodPost, "/api/composer/images/presign", token, map[string]any{
		"fileName": "scan.png",
		"mimeType": "image/png",
		"fileSize": 2048,
	})
	key := envelope.Data.(map[string]any)["key"].(string)

	if _, envelope = doJSON(t, router, http.MethodPost, "/api/composer/images", token, map[string]string{"key": key}); envelope.Code != 0 {
		t.Fatalf("attach image: code = %d", envelope.Code)
	}

	_, envelope = doJSON(t, router, http.MethodDelete, "/api/composer/images/0", token, nil)
	if envelope.Code != 0 {
		t.Fatalf("remove image: code = %d, message = %s", envelope.Code, envelope.Message)
	}
	draft := envelope.Data.(map[string]any)["draft"].(map[string]any)
	if images := draft["images"].([]any); len(images) != 0 {
		t.Fatalf("draft kept images after remove: %v", images)
	}

	fake := deps.Images.(*fakeImageStore)
	if len(fake.deleted) != 1 || fake.deleted[0] != key {
		t.Fatalf("stored object not released: %v", fake.deleted)
	}
}

func TestSessionEndpoint(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)

	_, envelope := doJSON(t, router, http.MethodGet, "/api/session", "", nil)
	if envelope.Data.(map[string]any)["user"] != nil {
		t.Fatalf("anonymous session returned a user: %v", envelope.Data)
	}

	_, envelope = doJSON(t, router, http.MethodGet, "/api/session", userToken(t), nil)
	user, ok := envelope.Data.(map[string]any)["user"].(map[string]any)
	if !ok || user["name"] != "Asha" {
		t.Fatalf("unexpected session user: %v", envelope.Data)
	}
}

func TestHealthWithoutDatabase(t *testing.T) {
	deps := testDeps(t)
	router := Router(deps)

	rec, envelope := doJSON(t, router, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := envelope.Data.(map[string]any)
	if data["status"] != "ok" || data["database"] != "disabled" {
		t.Fatalf("unexpected health payload: %v", data)
	}
}
