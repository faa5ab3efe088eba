package transport

import (
	"bufio"
	"bytes"
	"io"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/frankli0324/go-minihttp/internal/httperr"
	"github.com/frankli0324/go-minihttp/internal/model"
)

// ParseResponse turns a complete raw response byte sequence into a
// structured response. Headers are kept in wire order; the header map
// readers from net/textproto are deliberately not used since they collapse
// ordering and duplicates.
func ParseResponse(raw []byte) (*model.Response, error) {
	tp := textproto.NewReader(bufio.NewReader(bytes.NewReader(raw)))

	line, err := tp.ReadLine()
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrResponseParse, err)
	}
	proto, status, ok := strings.Cut(line, " ")
	if !ok {
		return nil, httperr.New(httperr.ErrResponseParse, "malformed status line "+strconv.Quote(line))
	}
	status = strings.TrimLeft(status, " ")
	code, reason, _ := strings.Cut(status, " ")
	if len(code) != 3 {
		return nil, httperr.New(httperr.ErrResponseParse, "malformed status code "+strconv.Quote(code))
	}
	statusCode, err := strconv.Atoi(code)
	if err != nil || statusCode < 0 {
		return nil, httperr.New(httperr.ErrResponseParse, "malformed status code "+strconv.Quote(code))
	}
	resp := &model.Response{
		Proto:      proto,
		StatusCode: statusCode,
		Reason:     reason,
	}

	for {
		l, err := tp.ReadLine()
		if err != nil {
			// headers must end with a blank line before EOF
			return nil, httperr.Wrap(httperr.ErrResponseParse, err)
		}
		if l == "" {
			break
		}
		name, value, ok := strings.Cut(l, ":")
		if !ok {
			return nil, httperr.New(httperr.ErrResponseParse, "malformed header line "+strconv.Quote(l))
		}
		resp.Headers = append(resp.Headers, model.Header{
			Name:  textproto.TrimString(name),
			Value: textproto.TrimString(value),
		})
	}

	body, err := io.ReadAll(tp.R)
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrResponseParse, err)
	}
	resp.Body = body
	return resp, nil
}
