package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankli0324/go-minihttp/internal/httperr"
	"github.com/frankli0324/go-minihttp/internal/model"
)

func TestNewDefaults(t *testing.T) {
	req, err := model.New("http://example.com/a?b=1")
	require.NoError(t, err)

	pr, err := req.Prepare()
	require.NoError(t, err)
	assert.Equal(t, model.MethodGet, pr.Method)
	assert.Equal(t, 30*time.Second, pr.Timeout)
	assert.False(t, pr.InsecureSkipVerify)
	assert.Nil(t, pr.Proxy)
	assert.False(t, pr.HasBody)
	assert.False(t, pr.AbsoluteForm)

	assert.Equal(t, "http", pr.Target.Scheme)
	assert.Equal(t, "example.com", pr.Target.Host)
	assert.Equal(t, 80, pr.Target.Port)
	assert.Equal(t, "example.com:80", pr.Target.HostPort())
	assert.Equal(t, "/a?b=1", pr.Target.RequestURI)
	assert.Equal(t, "http://example.com/a?b=1", pr.Target.AbsoluteURI)
}

func TestNewDefaultPorts(t *testing.T) {
	for url, hostport := range map[string]string{
		"http://example.com":       "example.com:80",
		"https://example.com":      "example.com:443",
		"http://example.com:8080/": "example.com:8080",
	} {
		req, err := model.New(url)
		require.NoError(t, err, url)
		pr, err := req.Prepare()
		require.NoError(t, err, url)
		assert.Equal(t, hostport, pr.Target.HostPort(), url)
	}
}

func TestNewRejectsUnresolvable(t *testing.T) {
	for _, url := range []string{
		"",
		"not a url",
		"http://",
		"ftp://example.com",
		"example.com/no/scheme",
	} {
		_, err := model.New(url)
		require.ErrorIs(t, err, httperr.ErrParse, url)
	}
}

func TestMethodChaining(t *testing.T) {
	req, err := model.New("http://example.com")
	require.NoError(t, err)

	pr, err := req.Post().Prepare()
	require.NoError(t, err)
	assert.Equal(t, model.MethodPost, pr.Method)

	pr, err = req.SetMethod(model.CustomMethod("PURGE")).Prepare()
	require.NoError(t, err)
	assert.Equal(t, model.Method("PURGE"), pr.Method)
}

func TestSetHeadersReplaces(t *testing.T) {
	req, err := model.New("http://example.com")
	require.NoError(t, err)

	req.SetHeaders([]model.Header{{Name: "X-A", Value: "1"}})
	req.SetHeaders([]model.Header{
		{Name: "X-B", Value: "2"},
		{Name: "X-B", Value: "3"},
	})
	pr, err := req.Prepare()
	require.NoError(t, err)
	assert.Equal(t, []model.Header{
		{Name: "X-B", Value: "2"},
		{Name: "X-B", Value: "3"},
	}, pr.Headers)
}

func TestSetBody(t *testing.T) {
	req, err := model.New("http://example.com")
	require.NoError(t, err)

	pr, err := req.SetBodyString("hello").Prepare()
	require.NoError(t, err)
	assert.True(t, pr.HasBody)
	assert.Equal(t, []byte("hello"), pr.Body)

	// a present but empty body is still a body
	pr, err = req.SetBody([]byte{}).Prepare()
	require.NoError(t, err)
	assert.True(t, pr.HasBody)
	assert.Empty(t, pr.Body)
}

func TestSetVerifyOnlyHTTPS(t *testing.T) {
	req, err := model.New("http://example.com")
	require.NoError(t, err)

	err = req.SetVerify(false)
	require.ErrorIs(t, err, httperr.ErrConfig)

	pr, err := req.Prepare()
	require.NoError(t, err)
	assert.False(t, pr.InsecureSkipVerify, "failed SetVerify must not mutate state")

	req, err = model.New("https://example.com")
	require.NoError(t, err)
	require.NoError(t, req.SetVerify(false))
	pr, err = req.Prepare()
	require.NoError(t, err)
	assert.True(t, pr.InsecureSkipVerify)
}

// TestSetProxyPolicy pins the configuration-time half of the forwarding
// policy: an http proxy paired with an https target is rejected outright,
// even though the forward path itself would relay any scheme. See
// TestProxyForwardPolicy in internal for the engine half.
func TestSetProxyPolicy(t *testing.T) {
	req, err := model.New("https://example.com")
	require.NoError(t, err)

	err = req.SetProxy("http://127.0.0.1:8080")
	require.ErrorIs(t, err, httperr.ErrProxyConfig)
	pr, err := req.Prepare()
	require.NoError(t, err)
	assert.Nil(t, pr.Proxy, "rejected SetProxy must not mutate state")

	require.NoError(t, req.SetProxy("https://127.0.0.1:8080"))
	pr, err = req.Prepare()
	require.NoError(t, err)
	require.NotNil(t, pr.Proxy)
	assert.Equal(t, "127.0.0.1:8080", pr.Proxy.HostPort())
	assert.False(t, pr.AbsoluteForm, "tunneling requests use the origin form")
}

func TestSetProxyLastCallWins(t *testing.T) {
	req, err := model.New("http://example.com")
	require.NoError(t, err)

	require.NoError(t, req.SetProxy("http://127.0.0.1:8080"))
	require.NoError(t, req.SetProxy("http://127.0.0.1:9090"))

	pr, err := req.Prepare()
	require.NoError(t, err)
	require.NotNil(t, pr.Proxy)
	assert.Equal(t, "127.0.0.1:9090", pr.Proxy.HostPort())
	assert.True(t, pr.AbsoluteForm)
}

func TestSetProxyBadURL(t *testing.T) {
	req, err := model.New("http://example.com")
	require.NoError(t, err)
	require.ErrorIs(t, req.SetProxy("://nope"), httperr.ErrParse)
}
