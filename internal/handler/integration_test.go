package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/msomdec/atelier/internal/handler"
)

type sessionBody struct {
	Session struct {
		ID                 int64    `json:"id"`
		Status             string   `json:"status"`
		TargetTemperatureC int      `json:"targetTemperatureC"`
		SuggestedProgram   string   `json:"suggestedProgram"`
		Warnings           []string `json:"warnings"`
		Garments           []struct {
			ID int64 `json:"id"`
		} `json:"garments"`
	} `json:"session"`
}

// doJSON sends body as JSON and decodes the response into out when out is non-nil.
func doJSON(t *testing.T, client *http.Client, method, target string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal %s %s: %v", method, target, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		t.Fatalf("new request %s %s: %v", method, target, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, target, err)
		}
	}
	return resp.StatusCode
}

func newTestClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func TestIntegration_WashDay(t *testing.T) {
	s := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, s)
	srv := httptest.NewServer(handler.Wrap(mux, s.Metrics))
	defer srv.Close()

	client := newTestClient(t)

	// 1. Protected routes reject anonymous callers.
	if code := doJSON(t, client, http.MethodGet, srv.URL+"/api/garments", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("anonymous garments: expected 401, got %d", code)
	}

	// 2. Register and log in.
	code := doJSON(t, client, http.MethodPost, srv.URL+"/api/register", map[string]string{
		"email":           "integ@example.com",
		"displayName":     "Integration User",
		"password":        "password123",
		"confirmPassword": "password123",
	}, nil)
	if code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", code)
	}

	code = doJSON(t, client, http.MethodPost, srv.URL+"/api/login", map[string]string{
		"email":    "integ@example.com",
		"password": "password123",
	}, nil)
	if code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", code)
	}

	srvURL, _ := url.Parse(srv.URL)
	var hasAuthToken bool
	for _, c := range client.Jar.Cookies(srvURL) {
		if c.Name == "auth_token" {
			hasAuthToken = true
		}
	}
	if !hasAuthToken {
		t.Fatal("expected auth_token cookie to be set after login")
	}

	// 3. Add two delicates and a white cotton towel.
	type garmentBody struct {
		Garment struct {
			ID         int64  `json:"id"`
			ColorGroup string `json:"colorGroup"`
			WearCount  int    `json:"wearCount"`
		} `json:"garment"`
	}
	create := func(input map[string]any) garmentBody {
		t.Helper()
		var out garmentBody
		if code := doJSON(t, client, http.MethodPost, srv.URL+"/api/garments", input, &out); code != http.StatusCreated {
			t.Fatalf("create garment %v: expected 201, got %d", input["name"], code)
		}
		return out
	}

	blouse := create(map[string]any{
		"name":        "Silk blouse",
		"color":       "#1A1A40",
		"composition": []map[string]any{{"fabric": "Silk", "percentage": 100}},
		"category":    "top",
		"subCategory": "Blouses",
		"careSymbols": []string{"hand_wash", "do_not_tumble_dry"},
		"wearCount":   2,
	})
	bra := create(map[string]any{
		"name":        "Lace bra",
		"color":       "000000",
		"composition": []map[string]any{{"fabric": "Nylon", "percentage": 80}, {"fabric": "Spandex", "percentage": 20}},
		"category":    "lingerie",
		"subCategory": "Bras",
		"careSymbols": []string{"machine_wash_delicate"},
	})
	towel := create(map[string]any{
		"name":        "Bath towel",
		"color":       "#FFFFFF",
		"composition": []map[string]any{{"fabric": "Cotton", "percentage": 100}},
		"category":    "other",
		"subCategory": "None",
		"careSymbols": []string{"machine_wash_very_hot"},
	})
	if towel.Garment.ColorGroup != "whites" {
		t.Fatalf("towel: expected whites, got %s", towel.Garment.ColorGroup)
	}

	// Invalid input is rejected before it reaches the store.
	code = doJSON(t, client, http.MethodPost, srv.URL+"/api/garments", map[string]any{
		"name": "Broken", "color": "nope", "category": "top", "subCategory": "Shirts",
	}, nil)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid garment: expected 422, got %d", code)
	}

	// 4. Sorting puts the towel in heavy duty and the rest in delicate.
	var bins struct {
		Bins []struct {
			Bin      string `json:"bin"`
			Garments []struct {
				ID int64 `json:"id"`
			} `json:"garments"`
		} `json:"bins"`
	}
	if code := doJSON(t, client, http.MethodGet, srv.URL+"/api/garments/bins", nil, &bins); code != http.StatusOK {
		t.Fatalf("bins: expected 200, got %d", code)
	}
	if len(bins.Bins) != 2 || bins.Bins[0].Bin != "heavy_duty" || bins.Bins[1].Bin != "delicate" {
		t.Fatalf("unexpected bin groups: %+v", bins.Bins)
	}
	if len(bins.Bins[1].Garments) != 2 {
		t.Fatalf("expected two delicates, got %d", len(bins.Bins[1].Garments))
	}

	// 5. Plan a delicate load, then add and remove the bra.
	var sess sessionBody
	code = doJSON(t, client, http.MethodPost, srv.URL+"/api/sessions", map[string]any{
		"bin":        "delicate",
		"garmentIds": []int64{blouse.Garment.ID},
	}, &sess)
	if code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d", code)
	}
	if sess.Session.TargetTemperatureC != 30 || sess.Session.SuggestedProgram != "Delicates / Wool" {
		t.Fatalf("unexpected plan: %+v", sess.Session)
	}
	if len(sess.Session.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", sess.Session.Warnings)
	}
	sessionURL := srv.URL + "/api/sessions/" + strconv.FormatInt(sess.Session.ID, 10)

	code = doJSON(t, client, http.MethodPost, sessionURL+"/garments", map[string]any{"garmentId": bra.Garment.ID}, &sess)
	if code != http.StatusOK {
		t.Fatalf("add garment: expected 200, got %d", code)
	}
	if len(sess.Session.Garments) != 2 || len(sess.Session.Warnings) != 1 || sess.Session.Warnings[0] != "Use mesh bag" {
		t.Fatalf("expected mesh bag warning with two garments, got %+v", sess.Session)
	}

	code = doJSON(t, client, http.MethodPost, sessionURL+"/garments", map[string]any{"garmentId": bra.Garment.ID}, nil)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate garment: expected 422, got %d", code)
	}

	code = doJSON(t, client, http.MethodDelete, sessionURL+"/garments/"+strconv.FormatInt(bra.Garment.ID, 10), nil, &sess)
	if code != http.StatusOK {
		t.Fatalf("remove garment: expected 200, got %d", code)
	}
	if len(sess.Session.Garments) != 1 || len(sess.Session.Warnings) != 0 {
		t.Fatalf("expected warning cleared after removal, got %+v", sess.Session)
	}

	// 6. The plan fragment streams as a datastar patch.
	resp, err := client.Get(sessionURL + "/plan")
	if err != nil {
		t.Fatalf("GET plan: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("plan: expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("plan: expected event stream, got %q", ct)
	}
	if !strings.Contains(string(body), "wash-plan") || !strings.Contains(string(body), "30°C") {
		t.Fatalf("plan: unexpected fragment %q", body)
	}

	// 7. Run the load to completion.
	for _, want := range []string{"washing", "drying", "completed"} {
		if code := doJSON(t, client, http.MethodPost, sessionURL+"/advance", nil, &sess); code != http.StatusOK {
			t.Fatalf("advance to %s: expected 200, got %d", want, code)
		}
		if sess.Session.Status != want {
			t.Fatalf("expected status %s, got %s", want, sess.Session.Status)
		}
	}
	if code := doJSON(t, client, http.MethodPost, sessionURL+"/advance", nil, nil); code != http.StatusConflict {
		t.Fatalf("advance completed session: expected 409, got %d", code)
	}

	var washed garmentBody
	doJSON(t, client, http.MethodGet, srv.URL+"/api/garments/"+strconv.FormatInt(blouse.Garment.ID, 10), nil, &washed)
	if washed.Garment.WearCount != 0 {
		t.Fatalf("expected wear count reset, got %d", washed.Garment.WearCount)
	}

	var appliance struct {
		Appliance struct {
			CyclesSinceLastClean int  `json:"cyclesSinceLastClean"`
			NeedsCleaning        bool `json:"needsCleaning"`
		} `json:"appliance"`
	}
	doJSON(t, client, http.MethodGet, srv.URL+"/api/appliance", nil, &appliance)
	if appliance.Appliance.CyclesSinceLastClean != 1 || appliance.Appliance.NeedsCleaning {
		t.Fatalf("unexpected appliance state: %+v", appliance.Appliance)
	}

	// 8. Logout clears the cookie and protected routes reject again.
	if code := doJSON(t, client, http.MethodPost, srv.URL+"/api/logout", nil, nil); code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", code)
	}
	if code := doJSON(t, client, http.MethodGet, srv.URL+"/api/me", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("after logout: expected 401, got %d", code)
	}
}

func TestIntegration_OtherUsersResourcesAreHidden(t *testing.T) {
	s := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, s)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	login := func(email string) *http.Client {
		t.Helper()
		client := newTestClient(t)
		doJSON(t, client, http.MethodPost, srv.URL+"/api/register", map[string]string{
			"email": email, "displayName": email, "password": "password123", "confirmPassword": "password123",
		}, nil)
		if code := doJSON(t, client, http.MethodPost, srv.URL+"/api/login", map[string]string{
			"email": email, "password": "password123",
		}, nil); code != http.StatusOK {
			t.Fatalf("login %s: expected 200, got %d", email, code)
		}
		return client
	}

	alice := login("alice@example.com")
	bob := login("bob@example.com")

	var created struct {
		Garment struct {
			ID int64 `json:"id"`
		} `json:"garment"`
	}
	doJSON(t, alice, http.MethodPost, srv.URL+"/api/garments", map[string]any{
		"name": "Jeans", "color": "#202040", "category": "bottom", "subCategory": "Jeans",
	}, &created)

	target := srv.URL + "/api/garments/" + strconv.FormatInt(created.Garment.ID, 10)
	if code := doJSON(t, bob, http.MethodGet, target, nil, nil); code != http.StatusNotFound {
		t.Fatalf("foreign garment: expected 404, got %d", code)
	}
	if code := doJSON(t, bob, http.MethodPost, srv.URL+"/api/sessions", map[string]any{
		"bin": "daily", "garmentIds": []int64{created.Garment.ID},
	}, nil); code != http.StatusNotFound {
		t.Fatalf("session with foreign garment: expected 404, got %d", code)
	}
	if code := doJSON(t, alice, http.MethodGet, target, nil, nil); code != http.StatusOK {
		t.Fatalf("own garment: expected 200, got %d", code)
	}
}

func TestIntegration_Care(t *testing.T) {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, newTestServices(t))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t)

	var normalized struct {
		Symbols []struct {
			Code string `json:"code"`
		} `json:"symbols"`
		Unmapped []string `json:"unmapped"`
	}
	code := doJSON(t, client, http.MethodPost, srv.URL+"/api/care/normalize", map[string]any{
		"labels": []string{"30C", "hand_wash", "mystery"},
	}, &normalized)
	if code != http.StatusOK {
		t.Fatalf("normalize: expected 200, got %d", code)
	}
	if len(normalized.Symbols) != 2 || normalized.Symbols[0].Code != "machine_wash_cold" || normalized.Symbols[1].Code != "hand_wash" {
		t.Fatalf("unexpected symbols: %+v", normalized.Symbols)
	}
	if len(normalized.Unmapped) != 1 || normalized.Unmapped[0] != "mystery" {
		t.Fatalf("unexpected unmapped: %v", normalized.Unmapped)
	}

	var color struct {
		Valid bool   `json:"valid"`
		Group string `json:"group"`
	}
	if code := doJSON(t, client, http.MethodGet, srv.URL+"/api/care/color?hex=%23000080", nil, &color); code != http.StatusOK {
		t.Fatalf("color: expected 200, got %d", code)
	}
	if !color.Valid || color.Group != "lights" {
		t.Fatalf("unexpected color classification: %+v", color)
	}
}
