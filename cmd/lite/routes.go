package main

import (
	"strconv"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/router/inbuilt"
)

type info struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Protocol string `json:"protocol"`
	Headers  int    `json:"headers"`
}

func newRouter() *inbuilt.Router {
	return inbuilt.New().
		Route("/", inbuilt.Get(index)).
		Route("/echo", inbuilt.Post(echo)).
		Route("/json", inbuilt.Get(describe)).
		Route("/only-get", inbuilt.Get(headersCount))
}

func index(*http.Request) string {
	return "OK!"
}

func echo(req *http.Request) string {
	return req.Body
}

func describe(req *http.Request) *http.Response {
	return req.Respond().JSON(info{
		Method:   req.Method.String(),
		Path:     req.Path,
		Protocol: req.Protocol,
		Headers:  req.Headers.Len(),
	})
}

func headersCount(req *http.Request) (string, error) {
	return strconv.Itoa(req.Headers.Len()), nil
}
