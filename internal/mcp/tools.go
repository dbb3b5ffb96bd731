package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winshot/internal/audit"
	"github.com/1broseidon/winshot/internal/capture"
	"github.com/1broseidon/winshot/internal/keyboard"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	records := s.directory.List()

	s.logger.Log(audit.ActionListWindows, map[string]interface{}{
		"count": len(records),
	})

	return nil, ListWindowsOutput{Windows: records, Count: len(records)}, nil
}

func (s *Server) handleFindWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FindWindowInput) (*mcpsdk.CallToolResult, FindWindowOutput, error) {
	title := strings.TrimSpace(args.Title)
	if title == "" {
		return nil, FindWindowOutput{}, fmt.Errorf("title must not be empty")
	}

	searchOwner := s.config.SearchInOwner()
	if args.SearchInOwner != nil {
		searchOwner = *args.SearchInOwner
	}

	id, err := s.directory.Resolve(title, searchOwner)
	if err != nil {
		s.logger.Log(audit.ActionFindWindow, map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
		return nil, FindWindowOutput{}, fmt.Errorf("no window matching %q", title)
	}

	out := FindWindowOutput{WindowID: id}
	if rec, ok := s.directory.Find(id); ok {
		out.Name = rec.Name
		out.Owner = rec.Owner
	}

	s.logger.Log(audit.ActionFindWindow, map[string]interface{}{
		"title":     title,
		"window_id": id,
	})
	return nil, out, nil
}

func (s *Server) handleCaptureWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CaptureWindowInput) (*mcpsdk.CallToolResult, CaptureWindowOutput, error) {
	identifier := strings.TrimSpace(args.WindowIdentifier)
	if identifier == "" {
		return nil, CaptureWindowOutput{}, fmt.Errorf("window_identifier must not be empty")
	}

	id, err := s.directory.Resolve(identifier, s.config.SearchInOwner())
	if err != nil {
		s.logger.Log(audit.ActionCaptureWindow, map[string]interface{}{
			"identifier": identifier,
			"error":      err.Error(),
		})
		return nil, CaptureWindowOutput{}, fmt.Errorf("no window matching %q", identifier)
	}

	png, err := s.pipeline.CaptureWindow(id, s.captureOptions(args.MaxWidth, args.MaxHeight))
	if err != nil {
		s.logger.Log(audit.ActionCaptureWindow, map[string]interface{}{
			"identifier": identifier,
			"window_id":  id,
			"error":      err.Error(),
		})
		return nil, CaptureWindowOutput{}, err
	}

	shot, err := s.store.Save(png)
	if err != nil {
		return nil, CaptureWindowOutput{}, err
	}

	out := CaptureWindowOutput{WindowID: id, ScreenshotURL: shot.URL}
	if rec, ok := s.directory.Find(id); ok {
		out.WindowName = rec.Name
	}

	s.logger.Log(audit.ActionCaptureWindow, map[string]interface{}{
		"identifier": identifier,
		"window_id":  id,
		"file":       shot.Filename,
		"bytes":      len(png),
	})
	return nil, out, nil
}

func (s *Server) handleCaptureDisplay(_ context.Context, _ *mcpsdk.CallToolRequest, args CaptureDisplayInput) (*mcpsdk.CallToolResult, CaptureDisplayOutput, error) {
	png, err := s.pipeline.CaptureDisplay(args.Display, s.captureOptions(args.MaxWidth, args.MaxHeight))
	if err != nil {
		s.logger.Log(audit.ActionCaptureDisplay, map[string]interface{}{
			"display": args.Display,
			"error":   err.Error(),
		})
		return nil, CaptureDisplayOutput{}, err
	}

	shot, err := s.store.Save(png)
	if err != nil {
		return nil, CaptureDisplayOutput{}, err
	}

	s.logger.Log(audit.ActionCaptureDisplay, map[string]interface{}{
		"display": args.Display,
		"file":    shot.Filename,
		"bytes":   len(png),
	})
	return nil, CaptureDisplayOutput{Display: args.Display, ScreenshotURL: shot.URL}, nil
}

func (s *Server) handleSendKey(_ context.Context, _ *mcpsdk.CallToolRequest, args SendKeyInput) (*mcpsdk.CallToolResult, SendKeyOutput, error) {
	if err := s.synth.SendKey(args.Key, args.Modifiers); err != nil {
		s.logger.Log(audit.ActionSendKey, map[string]interface{}{
			"key":   args.Key,
			"error": err.Error(),
		})
		if errors.Is(err, keyboard.ErrUnknownKey) {
			return nil, SendKeyOutput{}, fmt.Errorf("unknown key %q; known keys: %s", args.Key, strings.Join(keyboard.KnownKeys(), ", "))
		}
		return nil, SendKeyOutput{}, err
	}

	s.logger.Log(audit.ActionSendKey, map[string]interface{}{
		"key":       args.Key,
		"modifiers": strings.Join(args.Modifiers, "+"),
	})
	return nil, SendKeyOutput{Status: "sent", Key: args.Key, Modifiers: args.Modifiers}, nil
}

func (s *Server) handleTypeText(ctx context.Context, _ *mcpsdk.CallToolRequest, args TypeTextInput) (*mcpsdk.CallToolResult, TypeTextOutput, error) {
	if args.Text == "" {
		return nil, TypeTextOutput{}, fmt.Errorf("text must not be empty")
	}

	delay := s.config.CharDelay()
	if args.Delay != nil {
		delay = time.Duration(*args.Delay * float64(time.Second))
	}

	if err := s.synth.TypeText(ctx, args.Text, delay); err != nil {
		s.logger.Log(audit.ActionTypeText, map[string]interface{}{
			"text_length": len(args.Text),
			"error":       err.Error(),
		})
		return nil, TypeTextOutput{}, err
	}

	chars := len([]rune(args.Text))
	s.logger.Log(audit.ActionTypeText, map[string]interface{}{
		"text_length": len(args.Text),
		"characters":  chars,
	})
	return nil, TypeTextOutput{Status: "typed", Characters: chars}, nil
}

func (s *Server) captureOptions(maxWidth, maxHeight int) capture.Options {
	if maxWidth < 0 {
		maxWidth = 0
	}
	if maxHeight < 0 {
		maxHeight = 0
	}
	return capture.Options{MaxWidth: maxWidth, MaxHeight: maxHeight}
}
