package main

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

type WebContextMaker struct{}

func (cm *WebContextMaker) MakeContext(r *http.Request) (context.Context, error) {
	ctx := ctxlogrus.WithFields(r.Context(), logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
	return ctx, nil
}
