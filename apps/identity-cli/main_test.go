package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/client"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/luhn"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// runCmd はルートコマンドをargsで実行し、標準出力と標準エラー出力を返す。
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "ERROR")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func parseLines(t *testing.T, out string) map[string]string {
	t.Helper()
	values := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			t.Fatalf("malformed line %q", line)
		}
		values[k] = v
	}
	return values
}

func TestGenerateCommand(t *testing.T) {
	t.Run("IMEI for manufacturer", func(t *testing.T) {
		out, _, err := runCmd(t, "generate", "imei", "--manufacturer", "Samsung", "--seed", "42")
		if err != nil {
			t.Fatalf("generate error = %v", err)
		}
		imei := strings.TrimSpace(out)
		if !luhn.ValidIMEI(imei) {
			t.Fatalf("invalid IMEI %q", imei)
		}
		if !slices.Contains(refdata.Default().TACsFor(refdata.ManufacturerSamsung), imei[:8]) {
			t.Errorf("TAC %s is not a Samsung TAC", imei[:8])
		}
	})

	t.Run("phone number for carrier", func(t *testing.T) {
		out, _, err := runCmd(t, "generate", "PHONE_NUMBER", "--carrier", "44010")
		if err != nil {
			t.Fatalf("generate error = %v", err)
		}
		if !strings.HasPrefix(strings.TrimSpace(out), "+81") {
			t.Errorf("phone %q does not start with +81", out)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, _, err := runCmd(t, "generate", "FAX_NUMBER")
		if !errors.Is(err, apperr.ErrUnknownSpoofType) {
			t.Fatalf("expected ErrUnknownSpoofType, got %v", err)
		}
		if got := exitCode(err); got != exitInvalid {
			t.Errorf("exitCode = %d, want %d", got, exitInvalid)
		}
	})

	t.Run("unknown carrier", func(t *testing.T) {
		_, _, err := runCmd(t, "generate", "IMSI", "--carrier", "99999")
		if !errors.Is(err, apperr.ErrCarrierNotFound) {
			t.Fatalf("expected ErrCarrierNotFound, got %v", err)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		if _, _, err := runCmd(t, "generate"); err == nil {
			t.Error("expected error without a type argument")
		}
	})
}

func TestBundleCommand(t *testing.T) {
	t.Run("SIM card lines", func(t *testing.T) {
		out, _, err := runCmd(t, "bundle", "sim", "--carrier", "44010")
		if err != nil {
			t.Fatalf("bundle error = %v", err)
		}

		lines := strings.Split(strings.TrimSpace(out), "\n")
		types := model.GroupSIMCard.Types()
		if len(lines) != len(types) {
			t.Fatalf("got %d lines, want %d", len(lines), len(types))
		}
		for i, typ := range types {
			if !strings.HasPrefix(lines[i], string(typ)+"=") {
				t.Errorf("line %d = %q, want %s first", i, lines[i], typ)
			}
		}

		values := parseLines(t, out)
		if !strings.HasPrefix(values["IMSI"], "44010") {
			t.Errorf("IMSI %q does not start with 44010", values["IMSI"])
		}
		if values["CARRIER_MCC_MNC"] != "44010" || values["SIM_COUNTRY_ISO"] != "jp" {
			t.Errorf("unexpected carrier values: %v", values)
		}
		if !luhn.ValidICCID(values["ICCID"]) {
			t.Errorf("invalid ICCID %q", values["ICCID"])
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		out, _, err := runCmd(t, "bundle", "LOCATION", "--country", "IN", "--json")
		if err != nil {
			t.Fatalf("bundle error = %v", err)
		}
		var values map[string]string
		if err := json.Unmarshal([]byte(out), &values); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if values["TIMEZONE"] != "Asia/Kolkata" {
			t.Errorf("TIMEZONE = %q, want Asia/Kolkata", values["TIMEZONE"])
		}
	})

	t.Run("same seed same bundle", func(t *testing.T) {
		first, _, err := runCmd(t, "bundle", "hardware", "--seed", "7")
		if err != nil {
			t.Fatalf("bundle error = %v", err)
		}
		second, _, err := runCmd(t, "bundle", "hardware", "--seed", "7")
		if err != nil {
			t.Fatalf("bundle error = %v", err)
		}
		if first != second {
			t.Errorf("seeded bundles differ:\n%s\n%s", first, second)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		_, _, err := runCmd(t, "bundle", "battery")
		if !errors.Is(err, apperr.ErrUnknownGroup) {
			t.Fatalf("expected ErrUnknownGroup, got %v", err)
		}
	})
}

func readCSV(t *testing.T, r io.Reader) [][]string {
	t.Helper()
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	return records
}

func TestExportCommand(t *testing.T) {
	t.Run("local to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.csv")
		_, stderr, err := runCmd(t, "export", "sim", "-n", "12", "-o", path, "--country", "GB")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		if !strings.Contains(stderr, "wrote 12 rows") {
			t.Errorf("stderr = %q", stderr)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer f.Close()

		records := readCSV(t, f)
		if len(records) != 13 {
			t.Fatalf("got %d records, want 13", len(records))
		}
		iso := slices.Index(records[0], "SIM_COUNTRY_ISO")
		if iso < 0 {
			t.Fatalf("header %v lacks SIM_COUNTRY_ISO", records[0])
		}
		for _, rec := range records[1:] {
			if rec[iso] != "gb" {
				t.Errorf("row %s: SIM_COUNTRY_ISO = %q, want gb", rec[0], rec[iso])
			}
		}
	})

	t.Run("local to stdout", func(t *testing.T) {
		out, _, err := runCmd(t, "export", "location", "-n", "3")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		records := readCSV(t, strings.NewReader(out))
		if len(records) != 4 || records[0][0] != "index" {
			t.Errorf("unexpected CSV: %v", records)
		}
	})

	t.Run("invalid count", func(t *testing.T) {
		_, _, err := runCmd(t, "export", "sim", "-n", "0")
		var vErr *apperr.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("remote", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/bundles/LOCATION" || r.URL.Query().Get("country") != "JP" {
				t.Errorf("unexpected request %s", r.URL)
			}
			if r.Header.Get(client.HeaderTraceID) == "" {
				t.Error("missing trace id")
			}
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"group":"LOCATION","values":{"TIMEZONE":"Asia/Tokyo","LOCALE":"ja_JP","LOCATION_LATITUDE":"35.681236","LOCATION_LONGITUDE":"139.767125"}}`)
		}))
		defer server.Close()
		t.Setenv("IDENTITY_API_URL", server.URL)

		out, _, err := runCmd(t, "export", "location", "-n", "4", "--api", "--country", "JP", "--workers", "1", "--rate", "0")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		records := readCSV(t, strings.NewReader(out))
		if len(records) != 5 {
			t.Fatalf("got %d records, want 5", len(records))
		}
		if got := calls.Load(); got != 4 {
			t.Errorf("server called %d times, want 4", got)
		}
		tz := slices.Index(records[0], "TIMEZONE")
		if records[1][tz] != "Asia/Tokyo" {
			t.Errorf("TIMEZONE = %q", records[1][tz])
		}
	})
}

func TestWriteExportRemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	want := errors.New("write failed")

	err := writeExport(io.Discard, path, func(w io.Writer) error {
		io.WriteString(w, "index\n")
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("writeExport() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("partial export file should be removed")
	}
}

// newProfileServer はプロファイルAPIを模したテストサーバーを返す。
func newProfileServer(t *testing.T) *httptest.Server {
	t.Helper()
	profile := `{"id":"p1","name":"work","identifiers":[{"type":"PHONE_NUMBER","group":"SIM_CARD","value":"+819012345678","enabled":true}],"groups":[{"group":"SIM_CARD","anchor":"44010","state":"synced","synced":true}],"created_at":1,"updated_at":2}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /api/v1/profiles":
			var req client.CreateProfileRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name != "work" {
				t.Errorf("unexpected create body: %+v %v", req, err)
			}
			if req.Reference == nil || req.Reference.Carrier != "44010" {
				t.Errorf("reference not forwarded: %+v", req.Reference)
			}
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, profile)
		case "GET /api/v1/profiles":
			fmt.Fprint(w, `{"ids":["p1","p2"]}`)
		case "GET /api/v1/profiles/p1",
			"POST /api/v1/profiles/p1/regenerate/PHONE_NUMBER",
			"PUT /api/v1/profiles/p1/identifiers/IMEI/enabled":
			fmt.Fprint(w, profile)
		case "POST /api/v1/profiles/p1/groups/SIM_CARD/regenerate":
			body, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(body), `"carrier":"44020"`) {
				t.Errorf("unexpected group body %s", body)
			}
			fmt.Fprint(w, profile)
		case "GET /api/v1/profiles/p1/values":
			fmt.Fprint(w, `{"id":"p1","values":{"PHONE_NUMBER":"+819012345678","IMEI":"353325101234563"}}`)
		case "DELETE /api/v1/profiles/p1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"type":"about:blank","title":"Not Found","status":404,"detail":"profile not found"}`)
		}
	}))
	t.Cleanup(server.Close)
	t.Setenv("IDENTITY_API_URL", server.URL)
	return server
}

func TestProfileCommands(t *testing.T) {
	newProfileServer(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"create", []string{"profile", "create", "--name", "work", "--carrier", "44010"}, `"id": "p1"`},
		{"show", []string{"profile", "show", "p1"}, `"synced": true`},
		{"list", []string{"profile", "list"}, "p1\np2\n"},
		{"regenerate field", []string{"profile", "regenerate", "p1", "phone_number"}, `"PHONE_NUMBER"`},
		{"regenerate group", []string{"profile", "regenerate", "p1", "--group", "sim", "--carrier", "44020"}, `"anchor": "44010"`},
		{"disable", []string{"profile", "disable", "p1", "IMEI"}, `"id": "p1"`},
		{"values", []string{"profile", "values", "p1"}, "IMEI=353325101234563\nPHONE_NUMBER=+819012345678\n"},
		{"delete", []string{"profile", "delete", "p1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCmd(t, tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}

func TestProfileCommandErrors(t *testing.T) {
	newProfileServer(t)

	t.Run("not found", func(t *testing.T) {
		_, _, err := runCmd(t, "profile", "show", "missing")
		var apiErr *client.APIError
		if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
			t.Fatalf("expected 404 APIError, got %v", err)
		}
		if got := exitCode(err); got != exitInvalid {
			t.Errorf("exitCode = %d, want %d", got, exitInvalid)
		}
	})

	t.Run("create without name", func(t *testing.T) {
		if _, _, err := runCmd(t, "profile", "create"); err == nil {
			t.Error("expected error without --name")
		}
	})

	t.Run("regenerate without type or group", func(t *testing.T) {
		_, _, err := runCmd(t, "profile", "regenerate", "p1")
		var vErr *apperr.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("regenerate with type and group", func(t *testing.T) {
		_, _, err := runCmd(t, "profile", "regenerate", "p1", "IMSI", "--group", "sim")
		var vErr *apperr.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestProfileCommandUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	t.Setenv("IDENTITY_API_URL", server.URL)

	_, _, err := runCmd(t, "profile", "list")
	var connErr *client.ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectionError, got %v", err)
	}
	if got := exitCode(err); got != exitUnavailable {
		t.Errorf("exitCode = %d, want %d", got, exitUnavailable)
	}
}

func TestValidateIdentifier(t *testing.T) {
	reg := refdata.Default()
	imei := luhn.AppendIMEICheckDigit("35332510123456")
	iccid := luhn.AppendICCIDCheckDigit("898110101234567890")

	badIMEI := imei[:14] + string(rune('0'+(imei[14]-'0'+1)%10))

	tests := []struct {
		name    string
		typ     model.SpoofType
		value   string
		wantErr error
	}{
		{"valid IMEI", model.TypeIMEI, imei, nil},
		{"bad IMEI check digit", model.TypeIMEI, badIMEI, apperr.ErrInvalidIMEI},
		{"short IMEI", model.TypeIMEI, "35332510", apperr.ErrInvalidIMEI},
		{"valid ICCID", model.TypeICCID, iccid, nil},
		{"ICCID wrong prefix", model.TypeICCID, luhn.AppendICCIDCheckDigit("998110101234567890"), apperr.ErrInvalidICCID},
		{"valid IMSI", model.TypeIMSI, "440101234567890", nil},
		{"IMSI unknown carrier", model.TypeIMSI, "999991234567890", apperr.ErrInvalidIMSI},
		{"IMSI with letters", model.TypeIMSI, "44010abcdefghij", apperr.ErrInvalidIMSI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateIdentifier(reg, tt.typ, tt.value)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if got := exitCode(err); got != exitInvalid {
				t.Errorf("exitCode = %d, want %d", got, exitInvalid)
			}
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		_, err := validateIdentifier(reg, model.TypeTimezone, "UTC")
		var vErr *apperr.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}

func TestValidateCommand(t *testing.T) {
	out, _, err := runCmd(t, "validate", "IMSI", "440101234567890")
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "44010") {
		t.Errorf("output %q does not name the carrier", out)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"generic", errors.New("boom"), exitError},
		{"empty result set", apperr.ErrEmptyResultSet, exitError},
		{"validation", apperr.NewValidationError("count", "bad"), exitInvalid},
		{"unknown group", fmt.Errorf("wrap: %w", apperr.ErrUnknownGroup), exitInvalid},
		{"circuit open", client.ErrCircuitOpen, exitUnavailable},
		{"server error", &client.APIError{StatusCode: 503}, exitUnavailable},
		{"conflict", &client.APIError{StatusCode: 409}, exitInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
