package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upliftapp/uplift/internal/app"
)

func goalID(t *testing.T, a *app.App, text string) string {
	t.Helper()
	var id string
	require.NoError(t, a.DB.Get(&id, `SELECT id FROM goals WHERE text = $1`, text))
	return id
}

func TestGoalCreateAndListOnIndex(t *testing.T) {
	ts, a := newTestServer(t)
	client := newClient(t)
	register(t, client, ts.URL, "alice", "hunter2secret")

	resp := postForm(t, client, ts.URL, "/", url.Values{"goal": {"run a marathon"}})
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	resp = get(t, client, ts.URL+"/")
	body := readBody(t, resp)
	assert.Contains(t, body, "run a marathon")

	var count int
	require.NoError(t, a.DB.Get(&count, `SELECT COUNT(*) FROM goals`))
	assert.Equal(t, 1, count)
}

func TestEmptyTextSubmissionsAreNoOps(t *testing.T) {
	ts, a := newTestServer(t)
	client := newClient(t)
	register(t, client, ts.URL, "alice", "hunter2secret")

	// Empty goal and affirmation fall through to a re-render, no redirect.
	for _, field := range []string{"goal", "affirmation"} {
		resp := postForm(t, client, ts.URL, "/", url.Values{field: {""}})
		body := readBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode, field)
		assert.Contains(t, body, "Welcome, alice", field)
	}

	// Empty accomplishment still redirects.
	resp := postForm(t, client, ts.URL, "/add_accomplishment", url.Values{"accomplishment": {""}})
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	for _, table := range []string{"goals", "affirmations", "accomplishments"} {
		var count int
		require.NoError(t, a.DB.Get(&count, `SELECT COUNT(*) FROM `+table))
		assert.Zero(t, count, table)
	}
}

func TestToggleGoalAttained(t *testing.T) {
	ts, a := newTestServer(t)
	client := newClient(t)
	register(t, client, ts.URL, "alice", "hunter2secret")

	resp := postForm(t, client, ts.URL, "/", url.Values{"goal": {"run a marathon"}})
	resp.Body.Close()
	id := goalID(t, a, "run a marathon")

	resp = get(t, client, ts.URL+"/toggle_goal/"+id+"/true")
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var attained bool
	require.NoError(t, a.DB.Get(&attained, `SELECT is_attained FROM goals WHERE id = $1`, id))
	assert.True(t, attained)

	resp = get(t, client, ts.URL+"/")
	body := readBody(t, resp)
	assert.Contains(t, body, "Congratulations! You just accomplished a new goal.")

	// Toggling off clears the shared goal reference.
	_, err := a.DB.Exec(`UPDATE goals SET shared_goal = 'shared-artifact' WHERE id = $1`, id)
	require.NoError(t, err)

	resp = get(t, client, ts.URL+"/toggle_goal/"+id+"/false")
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var shared *string
	require.NoError(t, a.DB.Get(&shared, `SELECT shared_goal FROM goals WHERE id = $1`, id))
	assert.Nil(t, shared)
}

func TestToggleGoalRejectsBadAttainedSegment(t *testing.T) {
	ts, a := newTestServer(t)
	client := newClient(t)
	register(t, client, ts.URL, "alice", "hunter2secret")

	resp := postForm(t, client, ts.URL, "/", url.Values{"goal": {"run a marathon"}})
	resp.Body.Close()
	id := goalID(t, a, "run a marathon")

	resp = get(t, client, ts.URL+"/toggle_goal/"+id+"/maybe")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var attained bool
	require.NoError(t, a.DB.Get(&attained, `SELECT is_attained FROM goals WHERE id = $1`, id))
	assert.False(t, attained, "bad segment must not change the row")
}

func TestToggleForeignGoalIs404(t *testing.T) {
	ts, a := newTestServer(t)

	alice := newClient(t)
	register(t, alice, ts.URL, "alice", "hunter2secret")
	resp := postForm(t, alice, ts.URL, "/", url.Values{"goal": {"run a marathon"}})
	resp.Body.Close()
	id := goalID(t, a, "run a marathon")

	bob := newClient(t)
	register(t, bob, ts.URL, "bob", "hunter2secret")

	resp = get(t, bob, ts.URL+"/toggle_goal/"+id+"/true")
	body := readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Goal not found or you do not have permission to change it")

	var attained bool
	require.NoError(t, a.DB.Get(&attained, `SELECT is_attained FROM goals WHERE id = $1`, id))
	assert.False(t, attained, "foreign toggle must leave the row unchanged")
}

func TestDeleteForeignGoalFlashesNotice(t *testing.T) {
	ts, a := newTestServer(t)

	alice := newClient(t)
	register(t, alice, ts.URL, "alice", "hunter2secret")
	resp := postForm(t, alice, ts.URL, "/", url.Values{"goal": {"run a marathon"}})
	resp.Body.Close()
	id := goalID(t, a, "run a marathon")

	bob := newClient(t)
	register(t, bob, ts.URL, "bob", "hunter2secret")

	// Unlike toggle, delete redirects with a soft notice.
	resp = get(t, bob, ts.URL+"/delete_goal/"+id)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, bob, ts.URL+"/")
	body := readBody(t, resp)
	assert.Contains(t, body, "Goal not found or you do not have permission to delete it.")

	var count int
	require.NoError(t, a.DB.Get(&count, `SELECT COUNT(*) FROM goals WHERE id = $1`, id))
	assert.Equal(t, 1, count, "foreign delete must leave the row")
}

func TestDeleteOwnGoal(t *testing.T) {
	ts, a := newTestServer(t)
	client := newClient(t)
	register(t, client, ts.URL, "alice", "hunter2secret")

	resp := postForm(t, client, ts.URL, "/", url.Values{"goal": {"run a marathon"}})
	resp.Body.Close()
	id := goalID(t, a, "run a marathon")

	resp = get(t, client, ts.URL+"/delete_goal/"+id)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var count int
	require.NoError(t, a.DB.Get(&count, `SELECT COUNT(*) FROM goals`))
	assert.Zero(t, count)
}

func TestAffirmationsArePrivatePerUser(t *testing.T) {
	ts, _ := newTestServer(t)

	alice := newClient(t)
	register(t, alice, ts.URL, "alice", "hunter2secret")
	resp := postForm(t, alice, ts.URL, "/", url.Values{"affirmation": {"I am capable"}})
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	bob := newClient(t)
	register(t, bob, ts.URL, "bob", "hunter2secret")

	resp = get(t, bob, ts.URL+"/")
	body := readBody(t, resp)
	assert.NotContains(t, body, "I am capable")

	resp = get(t, alice, ts.URL+"/")
	body = readBody(t, resp)
	assert.Contains(t, body, "I am capable")
}

func TestAccomplishmentFeedIsGlobal(t *testing.T) {
	ts, a := newTestServer(t)

	alice := newClient(t)
	register(t, alice, ts.URL, "alice", "hunter2secret")
	resp := postForm(t, alice, ts.URL, "/add_accomplishment", url.Values{"accomplishment": {"ran a 5k"}})
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// The author sees the share flash on the next render.
	resp = get(t, alice, ts.URL+"/")
	body := readBody(t, resp)
	assert.Contains(t, body, "Your accomplishment has been shared!")

	// Another user sees the accomplishment in the feed.
	bob := newClient(t)
	register(t, bob, ts.URL, "bob", "hunter2secret")
	resp = get(t, bob, ts.URL+"/")
	body = readBody(t, resp)
	assert.Contains(t, body, "ran a 5k")

	// But cannot delete it.
	var id string
	require.NoError(t, a.DB.Get(&id, `SELECT id FROM accomplishments WHERE text = 'ran a 5k'`))

	resp = get(t, bob, ts.URL+"/delete_accomplishment/"+id)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, bob, ts.URL+"/")
	body = readBody(t, resp)
	assert.Contains(t, body, "Accomplishment not found or you do not have permission to delete it.")

	var count int
	require.NoError(t, a.DB.Get(&count, `SELECT COUNT(*) FROM accomplishments`))
	assert.Equal(t, 1, count)

	// The owner can.
	resp = get(t, alice, ts.URL+"/delete_accomplishment/"+id)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	require.NoError(t, a.DB.Get(&count, `SELECT COUNT(*) FROM accomplishments`))
	assert.Zero(t, count)
}
