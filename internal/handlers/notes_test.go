package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cat-shelter-server/internal/models"
)

func TestNotesAreListedNewestFirst(t *testing.T) {
	router, db, _ := newTestEnv(t)

	cat := models.Cat{Name: "Minou"}
	require.NoError(t, db.Create(&cat).Error)

	for _, content := range []string{"premier", "deuxième", "troisième"} {
		w := doForm(router, http.MethodPost, "/api/v1/cats/"+cat.ID+"/notes", url.Values{
			"author":  {"Alice"},
			"content": {content},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doGet(router, "/api/v1/cats/"+cat.ID+"/notes")
	require.Equal(t, http.StatusOK, w.Code)

	var notes []struct {
		Content string `json:"content"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &notes))
	require.Len(t, notes, 3)
	assert.Equal(t, "troisième", notes[0].Content)
	assert.Equal(t, "premier", notes[2].Content)
}

func TestCreateNoteRequiresContent(t *testing.T) {
	router, db, _ := newTestEnv(t)

	cat := models.Cat{Name: "Minou"}
	require.NoError(t, db.Create(&cat).Error)

	w := doForm(router, http.MethodPost, "/api/v1/cats/"+cat.ID+"/notes", url.Values{
		"author": {"Alice"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateNoteAcceptsPDFAttachment(t *testing.T) {
	router, db, cfg := newTestEnv(t)

	cat := models.Cat{Name: "Minou"}
	require.NoError(t, db.Create(&cat).Error)

	w := doMultipart(router, "/api/v1/cats/"+cat.ID+"/notes",
		map[string]string{"content": "compte-rendu vétérinaire"},
		map[string]string{"attachment": "rapport.pdf"})
	require.Equal(t, http.StatusCreated, w.Code)

	var note models.Note
	require.NoError(t, db.First(&note).Error)
	require.NotEmpty(t, note.AttachmentFilename)

	_, err := os.Stat(filepath.Join(cfg.UploadDir, note.AttachmentFilename))
	assert.NoError(t, err)
}

func TestDeleteNoteRemovesAttachmentBestEffort(t *testing.T) {
	router, db, _ := newTestEnv(t)

	cat := models.Cat{Name: "Minou"}
	require.NoError(t, db.Create(&cat).Error)

	// The attachment file is already gone from disk; deletion must still
	// succeed.
	note := models.Note{CatID: cat.ID, Content: "ancienne note", AttachmentFilename: "123_missing.pdf"}
	require.NoError(t, db.Create(&note).Error)

	w := doForm(router, http.MethodPost, "/api/v1/notes/"+note.ID+"/delete", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Note{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
