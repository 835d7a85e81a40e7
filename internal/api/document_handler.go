package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"adResume/internal/api/middleware"
	"adResume/internal/document"
	"adResume/internal/errcode"
	"adResume/internal/resume"
	"adResume/internal/worker"
)

// DocumentHandler 暴露简历文档的读取、分区更新、重置与全量同步。
// 分区更新对访客开放（只落本地快照），全量同步要求登录。
type DocumentHandler struct {
	sessions *document.Registry
	redis    redis.UniversalClient
	logger   *slog.Logger
}

// NewDocumentHandler 构造 DocumentHandler。
func NewDocumentHandler(sessions *document.Registry, redisClient redis.UniversalClient, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		sessions: sessions,
		redis:    redisClient,
		logger:   logger,
	}
}

// session 按请求身份取会话：带有效访问令牌的请求用登录会话，否则访客会话。
func (h *DocumentHandler) session(c *gin.Context) *document.Session {
	if userID, ok := userIDFromContext(c); ok {
		return h.sessions.ForUser(c.Request.Context(), userID)
	}
	return h.sessions.Guest(c.Request.Context())
}

// GetDocument 返回当前身份的完整简历文档。
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	session := h.session(c)
	c.JSON(http.StatusOK, session.Document())
}

// ReloadDocument 重新执行一次加载（远端优先，链式回落），返回结果文档。
func (h *DocumentHandler) ReloadDocument(c *gin.Context) {
	session := h.session(c)
	c.JSON(http.StatusOK, session.Load(c.Request.Context()))
}

// UpdateProfile 整体替换 profile 分区。
func (h *DocumentHandler) UpdateProfile(c *gin.Context) {
	var profile resume.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session := h.session(c)
	session.UpdateProfile(c.Request.Context(), profile)
	h.notifyUpdated(c, session, resume.SectionProfile)
	c.JSON(http.StatusOK, session.Document())
}

// UpdateStats 整体替换 stats 分区（仅本地保存）。
func (h *DocumentHandler) UpdateStats(c *gin.Context) {
	var stats []resume.Stat
	if err := c.ShouldBindJSON(&stats); err != nil {
		BadRequest(c, err.Error())
		return
	}
	for _, stat := range stats {
		if !resume.ValidIcon(stat.Icon) {
			BadRequest(c, "invalid stat icon: "+stat.Icon)
			return
		}
	}

	session := h.session(c)
	session.UpdateStats(c.Request.Context(), stats)
	h.notifyUpdated(c, session, resume.SectionStats)
	c.JSON(http.StatusOK, session.Document())
}

// UpdateExperience 整体替换经历分区。
func (h *DocumentHandler) UpdateExperience(c *gin.Context) {
	var entries []resume.Experience
	if err := c.ShouldBindJSON(&entries); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session := h.session(c)
	session.UpdateExperience(c.Request.Context(), entries)
	h.notifyUpdated(c, session, resume.SectionExperience)
	c.JSON(http.StatusOK, session.Document())
}

// UpdateEducation 整体替换教育分区。
func (h *DocumentHandler) UpdateEducation(c *gin.Context) {
	var entries []resume.Education
	if err := c.ShouldBindJSON(&entries); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session := h.session(c)
	session.UpdateEducation(c.Request.Context(), entries)
	h.notifyUpdated(c, session, resume.SectionEducation)
	c.JSON(http.StatusOK, session.Document())
}

// UpdateSkills 整体替换技能分区。
func (h *DocumentHandler) UpdateSkills(c *gin.Context) {
	var entries []resume.Skill
	if err := c.ShouldBindJSON(&entries); err != nil {
		BadRequest(c, err.Error())
		return
	}
	for _, skill := range entries {
		if !resume.ValidSkillCategory(skill.Category) {
			BadRequest(c, "invalid skill category: "+skill.Category)
			return
		}
	}

	session := h.session(c)
	session.UpdateSkills(c.Request.Context(), entries)
	h.notifyUpdated(c, session, resume.SectionSkills)
	c.JSON(http.StatusOK, session.Document())
}

// UpdateLanguages 整体替换语言分区。
func (h *DocumentHandler) UpdateLanguages(c *gin.Context) {
	var entries []string
	if err := c.ShouldBindJSON(&entries); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session := h.session(c)
	session.UpdateLanguages(c.Request.Context(), entries)
	h.notifyUpdated(c, session, resume.SectionLanguages)
	c.JSON(http.StatusOK, session.Document())
}

// ResetDocument 重置为内置简历（内存+缓存），远端表保持不动。
func (h *DocumentHandler) ResetDocument(c *gin.Context) {
	session := h.session(c)
	session.ResetToDefault(c.Request.Context())
	c.JSON(http.StatusOK, session.Document())
}

type syncResponse struct {
	Success bool                `json:"success"`
	Report  document.SyncReport `json:"report"`
}

// SyncAll 把内存文档整体推送到远端表，返回聚合成败与分区明细。
// 这是唯一向用户暴露远端写入成败的接口。
func (h *DocumentHandler) SyncAll(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	session := h.sessions.ForUser(c.Request.Context(), userID)
	success, report := session.SyncAll(c.Request.Context())

	status := "synced"
	code := errcode.OK
	if !success {
		status = "error"
		code = errcode.SystemError
	}
	h.publishNotify(c, userID, worker.SyncNotifyMessage{Status: status, ErrorCode: code})

	c.JSON(http.StatusOK, syncResponse{Success: success, Report: report})
}

// notifyUpdated 向属主的通知频道广播分区已更新（在线预览用）。
func (h *DocumentHandler) notifyUpdated(c *gin.Context, session *document.Session, section string) {
	userID, ok := userIDFromContext(c)
	if !ok || !session.Authenticated() {
		return
	}
	h.publishNotify(c, userID, worker.SyncNotifyMessage{Status: "updated", Section: section, ErrorCode: errcode.OK})
}

func (h *DocumentHandler) publishNotify(c *gin.Context, userID uint, msg worker.SyncNotifyMessage) {
	if err := worker.PublishSyncNotify(c.Request.Context(), h.redis, userID, msg); err != nil {
		middleware.LoggerFromContext(c).Error("publish document notification failed", slog.Any("error", err))
	}
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case uint64:
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}
