package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/oceanlink/bulkcart-backend/pkg/errors"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestWriteSuccessWrapsData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var envelope map[string]map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if envelope["data"]["status"] != "ok" {
		t.Fatalf("envelope = %v", envelope)
	}
}

func TestWriteErrorExposesClientFacingMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
		WithDetails(map[string]string{"quantity": "must be at least 1"})
	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var envelope map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	errObj := envelope["error"]
	if errObj["code"] != "VALIDATION_ERROR" {
		t.Fatalf("code = %v", errObj["code"])
	}
	if errObj["message"] != "quantity must be positive" {
		t.Fatalf("message = %v", errObj["message"])
	}
	if errObj["details"] == nil {
		t.Fatal("validation details should pass through")
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), rec, errors.New("pool exhausted at 10.0.0.3"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var envelope map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	errObj := envelope["error"]
	if errObj["code"] != "INTERNAL_ERROR" {
		t.Fatalf("code = %v", errObj["code"])
	}
	if errObj["message"] != "internal server error" {
		t.Fatalf("internal causes must not leak, got %v", errObj["message"])
	}
}
