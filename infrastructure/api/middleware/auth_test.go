package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWriteProtect_ReadMethodsPassWithoutKey(t *testing.T) {
	handler := WriteProtect([]string{"secret"})(okHandler())

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		req := httptest.NewRequest(method, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s without key: status = %d, want %d", method, w.Code, http.StatusOK)
		}
	}
}

func TestWriteProtect_MutatingMethodsRequireKey(t *testing.T) {
	handler := WriteProtect([]string{"secret"})(okHandler())

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		req := httptest.NewRequest(method, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s without key: status = %d, want %d", method, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestWriteProtect_ValidKeyPasses(t *testing.T) {
	handler := WriteProtect([]string{"secret"})(okHandler())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("X-API-KEY", "secret")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("DELETE with valid key: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestWriteProtect_WrongKeyRejected(t *testing.T) {
	handler := WriteProtect([]string{"secret"})(okHandler())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("X-API-KEY", "wrong")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("DELETE with wrong key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestWriteProtect_NoKeysDisablesProtection(t *testing.T) {
	handler := WriteProtect(nil)(okHandler())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("DELETE with no keys configured: status = %d, want %d", w.Code, http.StatusOK)
	}
}
