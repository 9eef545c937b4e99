package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appforum "github.com/jackyeh168/qa_forum/src/internal/application/forum"
	"go.uber.org/zap"
)

// ForumHandler 問題、回答與評論的 HTTP 處理器
type ForumHandler struct {
	uc  *UseCases
	log *zap.Logger
}

// NewForumHandler 建立處理器
func NewForumHandler(uc *UseCases, log *zap.Logger) *ForumHandler {
	return &ForumHandler{uc: uc, log: log}
}

// RegisterRoutes 註冊論壇路由
func (h *ForumHandler) RegisterRoutes(group *gin.RouterGroup) {
	actor := RequireActor()

	group.GET("/questions", h.FetchRecentQuestions)
	group.POST("/questions", actor, h.CreateQuestion)
	group.GET("/slugs/:slug", h.GetQuestionBySlug)
	group.PUT("/questions/:id", actor, h.EditQuestion)
	group.DELETE("/questions/:id", actor, h.DeleteQuestion)

	group.GET("/questions/:id/answers", h.FetchQuestionAnswers)
	group.POST("/questions/:id/answers", actor, h.AnswerQuestion)
	group.PUT("/answers/:id", actor, h.EditAnswer)
	group.DELETE("/answers/:id", actor, h.DeleteAnswer)
	group.PATCH("/answers/:id/choose-as-best", actor, h.ChooseBestAnswer)

	group.GET("/questions/:id/comments", h.FetchQuestionComments)
	group.POST("/questions/:id/comments", actor, h.CommentOnQuestion)
	group.DELETE("/question-comments/:id", actor, h.DeleteQuestionComment)
	group.GET("/answers/:id/comments", h.FetchAnswerComments)
	group.POST("/answers/:id/comments", actor, h.CommentOnAnswer)
	group.DELETE("/answer-comments/:id", actor, h.DeleteAnswerComment)
}

// ===========================
// 請求結構
// ===========================

type questionRequest struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	AttachmentIDs []string `json:"attachment_ids"`
}

type answerRequest struct {
	Content       string   `json:"content" binding:"required"`
	AttachmentIDs []string `json:"attachment_ids"`
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// pageParam 解析 ?page=，預設 1；頁碼的範圍由用例驗證
func pageParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "page must be an integer")
		return 0, false
	}
	return page, true
}

// ===========================
// 問題
// ===========================

func (h *ForumHandler) CreateQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.uc.CreateQuestion.Execute(appforum.CreateQuestionCommand{
		AuthorID:      actorID(c),
		Title:         req.Title,
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, presentQuestion(result.Question))
}

func (h *ForumHandler) FetchRecentQuestions(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	result, err := h.uc.FetchRecentQuestions.Execute(appforum.FetchRecentQuestionsQuery{Page: page})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentQuestions(result.Questions))
}

func (h *ForumHandler) GetQuestionBySlug(c *gin.Context) {
	result, err := h.uc.GetQuestionBySlug.Execute(appforum.GetQuestionBySlugQuery{Slug: c.Param("slug")})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentQuestion(result.Question))
}

func (h *ForumHandler) EditQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.uc.EditQuestion.Execute(appforum.EditQuestionCommand{
		AuthorID:      actorID(c),
		QuestionID:    c.Param("id"),
		Title:         req.Title,
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentQuestion(result.Question))
}

func (h *ForumHandler) DeleteQuestion(c *gin.Context) {
	err := h.uc.DeleteQuestion.Execute(appforum.DeleteQuestionCommand{
		AuthorID:   actorID(c),
		QuestionID: c.Param("id"),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ===========================
// 回答
// ===========================

func (h *ForumHandler) AnswerQuestion(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.uc.AnswerQuestion.Execute(appforum.AnswerQuestionCommand{
		AuthorID:      actorID(c),
		QuestionID:    c.Param("id"),
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, presentAnswer(result.Answer))
}

func (h *ForumHandler) FetchQuestionAnswers(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	result, err := h.uc.FetchQuestionAnswers.Execute(appforum.FetchQuestionAnswersQuery{
		QuestionID: c.Param("id"),
		Page:       page,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentAnswers(result.Answers))
}

func (h *ForumHandler) EditAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.uc.EditAnswer.Execute(appforum.EditAnswerCommand{
		AuthorID:      actorID(c),
		AnswerID:      c.Param("id"),
		Content:       req.Content,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentAnswer(result.Answer))
}

func (h *ForumHandler) DeleteAnswer(c *gin.Context) {
	err := h.uc.DeleteAnswer.Execute(appforum.DeleteAnswerCommand{
		AuthorID: actorID(c),
		AnswerID: c.Param("id"),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChooseBestAnswer 只有問題作者可以選
func (h *ForumHandler) ChooseBestAnswer(c *gin.Context) {
	result, err := h.uc.ChooseBestAnswer.Execute(appforum.ChooseQuestionBestAnswerCommand{
		AuthorID: actorID(c),
		AnswerID: c.Param("id"),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentQuestion(result.Question))
}

// ===========================
// 評論
// ===========================

func (h *ForumHandler) CommentOnQuestion(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.uc.CommentOnQuestion.Execute(appforum.CommentOnQuestionCommand{
		AuthorID:   actorID(c),
		QuestionID: c.Param("id"),
		Content:    req.Content,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, presentQuestionComment(result.QuestionComment))
}

func (h *ForumHandler) FetchQuestionComments(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	result, err := h.uc.FetchQuestionComments.Execute(appforum.FetchQuestionCommentsQuery{
		QuestionID: c.Param("id"),
		Page:       page,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentQuestionComments(result.QuestionComments))
}

func (h *ForumHandler) DeleteQuestionComment(c *gin.Context) {
	err := h.uc.DeleteQuestionComment.Execute(appforum.DeleteQuestionCommentCommand{
		AuthorID:          actorID(c),
		QuestionCommentID: c.Param("id"),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ForumHandler) CommentOnAnswer(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.uc.CommentOnAnswer.Execute(appforum.CommentOnAnswerCommand{
		AuthorID: actorID(c),
		AnswerID: c.Param("id"),
		Content:  req.Content,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, presentAnswerComment(result.AnswerComment))
}

func (h *ForumHandler) FetchAnswerComments(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	result, err := h.uc.FetchAnswerComments.Execute(appforum.FetchAnswerCommentsQuery{
		AnswerID: c.Param("id"),
		Page:     page,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, presentAnswerComments(result.AnswerComments))
}

func (h *ForumHandler) DeleteAnswerComment(c *gin.Context) {
	err := h.uc.DeleteAnswerComment.Execute(appforum.DeleteAnswerCommentCommand{
		AuthorID:        actorID(c),
		AnswerCommentID: c.Param("id"),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
