/*
 * © 2026 beyondverage0908
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sentry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceLoader_Load(t *testing.T) {
	requested := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested++
		if r.URL.Path == "/missing.js" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("/*! sdk */"))
	}))
	t.Cleanup(server.Close)

	err := NewResourceLoader(server.URL+"/sentry.min.js", server.Client()).Load(context.Background())
	require.NoError(t, err)

	err = NewResourceLoader(server.URL+"/missing.js", server.Client()).Load(context.Background())
	assert.ErrorContains(t, err, "404")
	assert.Equal(t, 2, requested)
}

func TestResourceLoader_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(server.Close)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewResourceLoader(server.URL, nil).Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPresentLoader(t *testing.T) {
	assert.NoError(t, PresentLoader{}.Load(context.Background()))
}
