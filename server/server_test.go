package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/golang/mock/gomock"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	shim "github.com/heroku/cnb-shim"
	"github.com/heroku/cnb-shim/archive"
	"github.com/heroku/cnb-shim/buildpack"
	"github.com/heroku/cnb-shim/server"
	h "github.com/heroku/cnb-shim/testhelpers"
	"github.com/heroku/cnb-shim/testmock"
)

func TestServer(t *testing.T) {
	spec.Run(t, "Server", testServer, spec.Report(report.Terminal{}))
}

func testServer(t *testing.T, when spec.G, it spec.S) {
	var (
		mockCtrl   *gomock.Controller
		shimmer    *testmock.MockShimmer
		logHandler *memory.Handler
		srv        *server.Server
	)

	it.Before(func() {
		mockCtrl = gomock.NewController(t)
		shimmer = testmock.NewMockShimmer(mockCtrl)
		logHandler = memory.New()
		srv = server.New("0.0.0.0:3000", shimmer, &log.Logger{Handler: logHandler})
	})

	it.After(func() {
		mockCtrl.Finish()
	})

	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	when("GET /health", func() {
		it("always reports healthy", func() {
			w := get("/health")

			h.AssertEq(t, w.Code, http.StatusOK)
			h.AssertEq(t, w.Body.String(), "health check ok")
		})

		it("logs the request", func() {
			get("/health")

			h.AssertStringContains(t, h.AllLogs(logHandler), "GET /health 200")
		})
	})

	when("GET /v1/{namespace}/{name}", func() {
		it("serves the shimmed package as an attachment", func() {
			shimmer.EXPECT().
				Shim("heroku", "java", shim.Options{
					Version: "1.0.0",
					Name:    "Java",
					API:     "0.6",
					Stacks:  []string{"heroku-18", "heroku-20", "heroku-22"},
				}).
				Return(&shim.Package{Filename: "shimmed.tgz", Data: []byte("tgz-bytes")}, nil)

			w := get("/v1/heroku/java?version=1.0.0&name=Java&api=0.6&stacks=heroku-18,heroku-20&stacks=heroku-22")

			h.AssertEq(t, w.Code, http.StatusOK)
			h.AssertEq(t, w.Header().Get("Content-Type"), "application/x-gzip")
			h.AssertEq(t, w.Header().Get("Content-Disposition"), `attachment; filename="shimmed.tgz"`)
			h.AssertEq(t, w.Body.String(), "tgz-bytes")
		})

		it("passes empty options when the query string is empty", func() {
			shimmer.EXPECT().
				Shim("heroku", "java", shim.Options{}).
				Return(&shim.Package{Filename: "shimmed.tgz", Data: []byte("tgz-bytes")}, nil)

			w := get("/v1/heroku/java")

			h.AssertEq(t, w.Code, http.StatusOK)
		})

		it("drops empty stacks entries", func() {
			shimmer.EXPECT().
				Shim("heroku", "java", shim.Options{}).
				Return(&shim.Package{Filename: "shimmed.tgz", Data: []byte("tgz-bytes")}, nil)

			w := get("/v1/heroku/java?stacks=,,&stacks=")

			h.AssertEq(t, w.Code, http.StatusOK)
		})

		it("maps bad-request errors to 400 and logs the cause", func() {
			shimmer.EXPECT().
				Shim("heroku", "java", gomock.Any()).
				Return(nil, shim.NewBadRequestError(errors.New("invalid buildpack version '1.2'")))

			w := get("/v1/heroku/java?version=1.2")

			h.AssertEq(t, w.Code, http.StatusBadRequest)
			h.AssertEq(t, w.Body.String(), "INTERNAL SERVER ERROR")
			h.AssertStringContains(t, h.AllLogs(logHandler), "invalid buildpack version '1.2'")
		})

		it("maps service errors to 500 with the fixed body", func() {
			shimmer.EXPECT().
				Shim("heroku", "java", gomock.Any()).
				Return(nil, shim.NewServiceError(errors.New("disk full")))

			w := get("/v1/heroku/java")

			h.AssertEq(t, w.Code, http.StatusInternalServerError)
			h.AssertEq(t, w.Body.String(), "INTERNAL SERVER ERROR")
		})

		it("maps untagged errors to 500", func() {
			shimmer.EXPECT().
				Shim("heroku", "java", gomock.Any()).
				Return(nil, errors.New("boom"))

			w := get("/v1/heroku/java")

			h.AssertEq(t, w.Code, http.StatusInternalServerError)
			h.AssertEq(t, w.Body.String(), "INTERNAL SERVER ERROR")
		})
	})

	when("the route does not match", func() {
		it("responds 404 with the fixed body", func() {
			w := get("/nope")

			h.AssertEq(t, w.Code, http.StatusNotFound)
			h.AssertEq(t, w.Body.String(), "INTERNAL SERVER ERROR")
		})

		it("responds 404 for an incomplete buildpack path", func() {
			w := get("/v1/heroku")

			h.AssertEq(t, w.Code, http.StatusNotFound)
			h.AssertEq(t, w.Body.String(), "INTERNAL SERVER ERROR")
		})

		it("responds 404 for an unsupported method", func() {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/health", nil))

			h.AssertEq(t, w.Code, http.StatusNotFound)
			h.AssertEq(t, w.Body.String(), "INTERNAL SERVER ERROR")
		})
	})

	when("the shimmer is real", func() {
		var logger *log.Logger

		it.Before(func() {
			logger = &log.Logger{Handler: logHandler}
		})

		it("rejects an invalid namespace without contacting any registry", func() {
			srv = server.New("0.0.0.0:3000", shim.NewShimmer("", "", logger), logger)

			w := get("/v1/hero%20ku/java")

			h.AssertEq(t, w.Code, http.StatusBadRequest)
			h.AssertEq(t, w.Body.String(), "INTERNAL SERVER ERROR")
		})

		it("serves a package shimmed end to end", func() {
			tmpDir, err := os.MkdirTemp("", "server-test")
			h.AssertNil(t, err)
			defer os.RemoveAll(tmpDir)

			buildpackDir := filepath.Join(tmpDir, "service")
			h.Mkdir(t, filepath.Join(buildpackDir, "bin"))
			for _, bin := range []string{"detect", "build", "release", "exports"} {
				h.Mkfile(t, "#!/usr/bin/env bash\n", filepath.Join(buildpackDir, "bin", bin))
			}

			registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(h.Tgz(t, map[string]string{"a.txt": "contents-a"}))
			}))
			defer registry.Close()
			srv = server.New("0.0.0.0:3000", shim.NewShimmer(buildpackDir, registry.URL, logger), logger)

			w := get("/v1/my-namespace/my-name?version=1.2.3&api=0.4&stacks=heroku-20")

			h.AssertEq(t, w.Code, http.StatusOK)
			h.AssertEq(t, w.Header().Get("Content-Type"), "application/x-gzip")

			tgzPath := filepath.Join(tmpDir, "pkg.tgz")
			outDir := filepath.Join(tmpDir, "out")
			h.AssertNil(t, os.WriteFile(tgzPath, w.Body.Bytes(), 0600))
			h.AssertNil(t, archive.Unpack(tgzPath, outDir))

			d, err := buildpack.ReadDescriptor(filepath.Join(outDir, "buildpack.toml"))
			h.AssertNil(t, err)
			h.AssertEq(t, d.API, "0.4")
			h.AssertEq(t, d.Buildpack.ID, "my-namespace/my-name")
			h.AssertEq(t, d.Buildpack.Version, "1.2.3")
			h.AssertEq(t, d.Stacks, []buildpack.Stack{{ID: "heroku-20", Mixins: []string{}}})
			h.AssertEq(t, h.Rdfile(t, filepath.Join(outDir, "target", "a.txt")), "contents-a")
		})
	})
}
