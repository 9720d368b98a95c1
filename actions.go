package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

const ToastTTL = 4 * time.Second

const accessDeniedMessage = "Access denied: only the contract owner can do this"

const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

type Toast struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	TTLMs   int64  `json:"ttl_ms"`
}

func newToast(kind, message string) Toast {
	return Toast{ID: uuid.NewString(), Message: message, Kind: kind, TTLMs: ToastTTL.Milliseconds()}
}

// ActionResult is what every user action hands back: a toast and the pages
// the controller wants re-rendered.
type ActionResult struct {
	OK     bool   `json:"ok"`
	Toast  Toast  `json:"toast"`
	Reload []Page `json:"reload"`
}

type runFunc func(ctx context.Context, c *Controller) (string, error)

type actionDef struct {
	parse     func(form url.Values) (runFunc, error)
	reload    []Page
	failure   string
	ownerOnly bool
}

var actions = map[string]actionDef{
	"create-activity":       {parse: parseCreateActivity, reload: []Page{PageActivities, PageDashboard, PageAdmin}, failure: "Failed to create activity", ownerOnly: true},
	"reward-student":        {parse: parseRewardStudent, reload: []Page{PageDashboard, PageAdmin}, failure: "Failed to send points", ownerOnly: true},
	"mint-certificate":      {parse: parseMintCertificate, reload: []Page{PageAdmin, PageCertificates}, failure: "Failed to issue certificate", ownerOnly: true},
	"set-cert-uri":          {parse: parseSetCertURI, reload: []Page{PageAdmin}, failure: "Failed to set certificate URI", ownerOnly: true},
	"set-activity-status":   {parse: parseSetActivityStatus, reload: []Page{PageActivities, PageDashboard, PageAdmin}, failure: "Failed to update activity status", ownerOnly: true},
	"approve-request":       {parse: parseApproveRequest, reload: []Page{PageAdmin, PageCertificates}, failure: "Failed to approve request", ownerOnly: true},
	"request-certificate":   {parse: parseRequestCertificate, reload: []Page{PageActivities, PageAdmin}, failure: "Failed to request certificate"},
	"claim-certificate":     {parse: parseClaimCertificate, reload: []Page{PageCertificates, PageDashboard}, failure: "Failed to claim certificate"},
	"request-participation": {parse: parseRequestParticipation, reload: []Page{PageActivities, PageAdmin}, failure: "Failed to request participation"},
	"accept-participation":  {parse: parseParticipationDecision(true), reload: []Page{PageAdmin}, failure: "Failed to accept participation", ownerOnly: true},
	"reject-participation":  {parse: parseParticipationDecision(false), reload: []Page{PageAdmin}, failure: "Failed to reject participation", ownerOnly: true},
	"submit-certificate":    {parse: parseSubmitCertificate, reload: []Page{PageCertificates, PageAdmin}, failure: "Failed to submit certificate"},
	"review-submission":     {parse: parseReviewSubmission, reload: []Page{PageAdmin, PageCertificates}, failure: "Failed to review submission", ownerOnly: true},
}

// Perform validates the form for action and, when valid, runs it. Validation
// errors never reach the chain or the store. Owner-only actions run only for
// the activity manager's owner, including those that just edit the local store.
func (c *Controller) Perform(ctx context.Context, action string, form url.Values) ActionResult {
	def, ok := actions[action]
	if !ok {
		return ActionResult{Toast: newToast(ToastError, fmt.Sprintf("Unknown action %q", action))}
	}
	run, err := def.parse(form)
	if err != nil {
		return ActionResult{Toast: newToast(ToastWarning, userMessage(err))}
	}
	if def.ownerOnly {
		owner, err := c.facade.IsContractOwner(ctx)
		if err != nil {
			slog.Error("check contract owner", "action", action, "error", err)
			return ActionResult{Toast: newToast(ToastError, def.failure+": "+userMessage(err))}
		}
		if !owner {
			slog.Warn("owner-only action refused", "action", action)
			return ActionResult{Toast: newToast(ToastError, accessDeniedMessage)}
		}
	}
	msg, err := run(ctx, c)
	if err != nil {
		slog.Error("action failed", "action", action, "error", err)
		if errors.Is(err, ErrAlreadyExists) {
			return ActionResult{Toast: newToast(ToastWarning, msg)}
		}
		return ActionResult{Toast: newToast(ToastError, def.failure+": "+userMessage(err))}
	}
	return ActionResult{OK: true, Toast: newToast(ToastSuccess, msg), Reload: def.reload}
}

// Connect runs the wallet connection and reports it like any other action.
func (c *Controller) Connect(ctx context.Context) ActionResult {
	addr, err := c.gw.Connect(ctx)
	if err != nil {
		slog.Warn("connect wallet", "error", err)
		return ActionResult{Toast: newToast(ToastError, userMessage(err))}
	}
	return ActionResult{
		OK:     true,
		Toast:  newToast(ToastSuccess, "Wallet connected: "+ShortenAddress(addr.Hex())),
		Reload: allPages,
	}
}

func (c *Controller) Disconnect() ActionResult {
	c.gw.Disconnect()
	return ActionResult{OK: true, Toast: newToast(ToastInfo, "Wallet disconnected"), Reload: allPages}
}

// Header is the connect button state: the short address when connected,
// otherwise the enabled default label.
func (c *Controller) Header() HeaderView {
	addr, ok := c.gw.Account()
	if !ok {
		return HeaderView{Label: "Connect Wallet"}
	}
	return HeaderView{
		Connected: true,
		Label:     ShortenAddress(addr.Hex()),
		Address:   addr.Hex(),
		Network:   NetworkName(c.gw.ChainID()),
	}
}

// form helpers

func formString(form url.Values, field string) (string, error) {
	v := strings.TrimSpace(form.Get(field))
	if v == "" {
		return "", invalidInput(field, "Please fill in %s", field)
	}
	return v, nil
}

func formPositive(form url.Values, field string) (uint64, error) {
	raw, err := formString(form, field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, invalidInput(field, "%s must be a positive number", field)
	}
	return n, nil
}

func formID(form url.Values, field string) (int64, error) {
	n, err := formPositive(form, field)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

func formAddress(form url.Values, field string) (common.Address, error) {
	raw, err := formString(form, field)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, invalidInput(field, "Invalid wallet address")
	}
	return common.HexToAddress(raw), nil
}

func (c *Controller) connectedAccount() (common.Address, error) {
	addr, ok := c.gw.Account()
	if !ok {
		return common.Address{}, ErrNotConnected
	}
	return addr, nil
}

// parsers, one per action

func parseCreateActivity(form url.Values) (runFunc, error) {
	name, err := formString(form, "name")
	if err != nil {
		return nil, err
	}
	points, err := formPositive(form, "pointReward")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		if _, err := c.facade.CreateActivity(ctx, name, points); err != nil {
			return "", err
		}
		return fmt.Sprintf("Activity %q created", name), nil
	}, nil
}

func parseRewardStudent(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	student, err := formAddress(form, "student")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		activity, err := c.facade.Activity(ctx, activityID)
		if err != nil {
			return "", err
		}
		tx, err := c.facade.RewardStudent(ctx, activityID, student)
		if err != nil {
			return "", err
		}
		if err := c.store.RecordPoints(PointsEntry{
			ActivityID:   activityID,
			ActivityName: activity.Name,
			Student:      student.Hex(),
			Points:       activity.PointReward,
			TxHash:       tx.Hash,
		}); err != nil {
			slog.Warn("record recent points", "error", err)
		}
		if err := c.store.AddAttendee(activityID, student.Hex()); err != nil {
			slog.Warn("record attendee", "error", err)
		}
		return fmt.Sprintf("Sent %s CPNT to %s", activity.PointReward, ShortenAddress(student.Hex())), nil
	}, nil
}

func parseMintCertificate(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	student, err := formAddress(form, "student")
	if err != nil {
		return nil, err
	}
	uri, err := formString(form, "uri")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		if _, err := c.facade.MintCertificate(ctx, activityID, student, uri); err != nil {
			return "", err
		}
		if err := c.store.AddAttendee(activityID, student.Hex()); err != nil {
			slog.Warn("record attendee", "error", err)
		}
		return "Certificate issued", nil
	}, nil
}

func parseSetCertURI(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	uri, err := formString(form, "uri")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		if _, err := c.facade.SetActivityCertURI(ctx, activityID, uri); err != nil {
			return "", err
		}
		return "Certificate URI saved", nil
	}, nil
}

// parseSetActivityStatus keeps the contract flag and the local status in
// step: the chain write goes first and the local value is only stored once
// it confirmed.
func parseSetActivityStatus(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	raw, err := formString(form, "status")
	if err != nil {
		return nil, err
	}
	status, err := ParseActivityStatus(raw)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		activity, err := c.facade.Activity(ctx, activityID)
		if err != nil {
			return "", err
		}
		wantActive := status == StatusActive
		if activity.IsActive != wantActive {
			if _, err := c.facade.SetActivityActive(ctx, activityID, wantActive); err != nil {
				return "", err
			}
		}
		if err := c.store.SetActivityStatus(activityID, status); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s is now %s", activity.Name, status), nil
	}, nil
}

func parseApproveRequest(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	student, err := formAddress(form, "student")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		if _, err := c.facade.ApproveCertificateRequest(ctx, activityID, student); err != nil {
			return "", err
		}
		if err := c.store.AddAttendee(activityID, student.Hex()); err != nil {
			slog.Warn("record attendee", "error", err)
		}
		return fmt.Sprintf("Certificate approved for %s", ShortenAddress(student.Hex())), nil
	}, nil
}

func parseRequestCertificate(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		if _, err := c.facade.RequestCertificate(ctx, activityID); err != nil {
			return "", err
		}
		return "Certificate requested, waiting for admin approval", nil
	}, nil
}

func parseClaimCertificate(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		if _, err := c.facade.ClaimCertificate(ctx, activityID); err != nil {
			return "", err
		}
		return "Certificate claimed", nil
	}, nil
}

func parseRequestParticipation(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		student, err := c.connectedAccount()
		if err != nil {
			return "", err
		}
		if _, err := c.store.AddParticipationRequest(activityID, student.Hex()); err != nil {
			if errors.Is(err, ErrAlreadyExists) {
				return "You already asked to join this activity", err
			}
			return "", err
		}
		return "Participation request sent", nil
	}, nil
}

func parseParticipationDecision(accept bool) func(url.Values) (runFunc, error) {
	return func(form url.Values) (runFunc, error) {
		id, err := formID(form, "id")
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, c *Controller) (string, error) {
			if !accept {
				if err := c.store.RemoveParticipationRequest(id); err != nil {
					return "", err
				}
				return "Participation request rejected", nil
			}
			req, err := c.store.AcceptParticipationRequest(id)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s added to the roster", ShortenAddress(req.Student)), nil
		}, nil
	}
}

func parseSubmitCertificate(form url.Values) (runFunc, error) {
	activityID, err := formPositive(form, "activityId")
	if err != nil {
		return nil, err
	}
	title, err := formString(form, "title")
	if err != nil {
		return nil, err
	}
	uri, err := formString(form, "uri")
	if err != nil {
		return nil, err
	}
	note := strings.TrimSpace(form.Get("note"))
	return func(ctx context.Context, c *Controller) (string, error) {
		student, err := c.connectedAccount()
		if err != nil {
			return "", err
		}
		if _, err := c.store.AddSubmission(Submission{
			ActivityID:     activityID,
			Student:        student.Hex(),
			Title:          title,
			CertificateURI: uri,
			Note:           note,
		}); err != nil {
			return "", err
		}
		return "Certificate submitted for review", nil
	}, nil
}

func parseReviewSubmission(form url.Values) (runFunc, error) {
	id, err := formID(form, "id")
	if err != nil {
		return nil, err
	}
	status, err := formString(form, "status")
	if err != nil {
		return nil, err
	}
	if status != SubmissionApproved && status != SubmissionRejected {
		return nil, invalidInput("status", "Unknown review status %q", status)
	}
	return func(ctx context.Context, c *Controller) (string, error) {
		sub, err := c.store.ReviewSubmission(id, status)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Submission %q %s", sub.Title, status), nil
	}, nil
}
