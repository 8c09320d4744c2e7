package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const staffPayloadKey = "staff_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(staffPayloadKey, payload)

		ctx.Next()
	}
}
