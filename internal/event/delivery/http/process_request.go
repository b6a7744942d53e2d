package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse email request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFetchReq binds and validates the fetch email request body.
func (h *handler) processFetchReq(c *gin.Context) (fetchReq, error) {
	var req fetchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processWorkflowReq binds and validates the complete workflow request body.
func (h *handler) processWorkflowReq(c *gin.Context) (workflowReq, error) {
	var req workflowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
