package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/session-planner-bot/internal/domain/slack"
)

const statusTimeLayout = "Mon 2 Jan 2006 15:04 MST"

type SlackHandler struct {
	planner       contract.PlannerService
	signingSecret string
	log           *zap.Logger
}

func New(planner contract.PlannerService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		planner:       planner,
		signingSecret: signingSecret,
		log:           log.Named("slash"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected unsigned slash command", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	h.log.Debug("slash command", zap.String("user", s.UserID), zap.String("command", string(cmd.Type)))
	h.respond(w, h.handleCommand(r, cmd))
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStatus:
		return h.handleStatus(r, true)
	case slackcmd.CmdNext:
		return h.handleStatus(r, false)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleStatus(r *http.Request, withJournal bool) *slack.Msg {
	status, err := h.planner.Status(r.Context())
	if err != nil {
		h.log.Error("failed to build status", zap.Error(err))
		return h.createErrorResponse("Could not read the planner status")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         statusText(status, withJournal),
	}
}

func statusText(status *entity.Status, withJournal bool) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "*Next reminder:* %s\n", status.NextReminder.Format(statusTimeLayout))
	fmt.Fprintf(&b, "*Announced session:* %s", status.NextSession.Format(statusTimeLayout))
	if !withJournal {
		return b.String()
	}

	if status.LastReminder == nil {
		b.WriteString("\n*Last reminder:* none sent yet")
		return b.String()
	}
	fmt.Fprintf(&b, "\n*Last reminder:* %s for the session of %s, %d reaction(s) relayed",
		status.LastReminder.SentAt.Format(statusTimeLayout),
		status.LastReminder.SessionDate.Format(time.DateOnly),
		status.ReactionsCount,
	)

	return b.String()
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write slash command response", zap.Error(err))
	}
}
