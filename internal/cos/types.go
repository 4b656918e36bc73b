package cos

import (
	"github.com/velours/boutique/internal/cos/internal/web"
)

type Handler = web.Handler

var NewHandler = web.NewHandler
