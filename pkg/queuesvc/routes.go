package queuesvc

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-ringqueue/pkg/common/http/handler"
	"github.com/huynhanx03/go-ringqueue/pkg/common/http/response"
)

// Register mounts the queue routes under /queue.
func (s *Service) Register(r gin.IRouter) {
	g := r.Group("/queue")
	g.POST("/push", handler.Wrap(s.Push))
	g.POST("/pop", handler.Wrap(s.Pop))
	g.GET("/verify", handler.Wrap(s.Verify))
	g.GET("/inspect", handler.Wrap(s.Inspect))
	g.GET("/dump", s.dump)
}

func (s *Service) dump(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.Dump(&buf); err != nil {
		response.ErrorResponse(c, response.CodeInternalServer, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// NewRouter builds a gin engine in mode serving s.
func NewRouter(mode string, s *Service) *gin.Engine {
	gin.SetMode(mode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.Register(r)
	return r
}
