// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the blog.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, bearer authentication and multipart
// staging happen in this package before requests are delegated to the
// service layer. Every failure is answered with the JSON envelope
// {message, error?}; the error detail is only filled for 5xx responses.
package http
