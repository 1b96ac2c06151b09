package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/campus_inventory/pkg/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
// AllowOrigin is "*" or a comma separated list; listed origins are echoed
// back only when they match the request's Origin header.
func CORS(cfg *config.CORSConfig) app.HandlerFunc {
	origins := []string{"*"}
	allowMethods := "GET,POST,OPTIONS"
	allowHeaders := "*"
	allowCredentials := "false"

	if cfg != nil {
		if cfg.AllowOrigin != "" {
			origins = splitList(cfg.AllowOrigin)
		}
		if cfg.AllowMethods != "" {
			allowMethods = cfg.AllowMethods
		}
		if cfg.AllowHeaders != "" {
			allowHeaders = cfg.AllowHeaders
		}
		if cfg.AllowCredentials {
			allowCredentials = "true"
		}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		if origin := allowedOrigin(origins, string(c.GetHeader("Origin"))); origin != "" {
			c.Response.Header.Set("Access-Control-Allow-Origin", origin)
			c.Response.Header.Set("Access-Control-Allow-Methods", allowMethods)
			c.Response.Header.Set("Access-Control-Allow-Headers", allowHeaders)
			c.Response.Header.Set("Access-Control-Allow-Credentials", allowCredentials)
			if origin != "*" {
				c.Response.Header.Set("Vary", "Origin")
			}
		}

		if string(c.Request.Method()) == consts.MethodOptions {
			c.AbortWithStatus(consts.StatusNoContent)
			return
		}

		c.Next(ctx)
	}
}

func allowedOrigin(origins []string, requestOrigin string) string {
	for _, o := range origins {
		if o == "*" {
			return "*"
		}
		if requestOrigin != "" && strings.EqualFold(o, requestOrigin) {
			return requestOrigin
		}
	}
	return ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
