package plot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postsCSV = "\ufeffPlatform, PostType,Date,Likes\n" +
	"Instagram,Image,3/1/2024,480\n" +
	"Facebook,Video,3/1/2024,510\n" +
	"Twitter,Text,3/2/2024,430\n"

func TestReadCSV(t *testing.T) {
	df, err := ReadCSV("posts", strings.NewReader(postsCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, df.N)
	assert.Equal(t, []string{"Platform", "PostType", "Date", "Likes"}, df.FieldNames())
	assert.Equal(t, "Twitter", df.String(2, "Platform"))
}

func TestReadCSVErrors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":  "",
		"ragged": "a,b\n1,2\n3\n",
		"quote":  "a,b\n\"1,2\n",
		"dup":    "a,a\n1,2\n",
	} {
		_, err := ReadCSV(name, strings.NewReader(input))
		var le *LoadError
		if assert.ErrorAs(t, err, &le, name) {
			assert.Equal(t, name, le.Source)
		}
		assert.ErrorIs(t, err, ErrLoad, name)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	df, err := ReadCSV("h", strings.NewReader("Platform,Likes\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, df.N)
	assert.True(t, df.Has("Likes"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "social_media.csv")
	require.NoError(t, os.WriteFile(path, []byte(postsCSV), 0o644))

	df, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "social_media", df.Name)
	assert.Equal(t, 3, df.N)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, le.Source, "missing.csv")
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/posts.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(postsCSV))
	}))
	defer srv.Close()

	df, err := Load(context.Background(), srv.URL+"/data/posts.csv")
	require.NoError(t, err)
	assert.Equal(t, "posts", df.Name)
	assert.Equal(t, 3, df.N)

	_, err = Load(context.Background(), srv.URL+"/nope.csv")
	assert.ErrorIs(t, err, ErrLoad)
}
