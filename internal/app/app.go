package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/platoconv/internal/convert"
	"github.com/hyperifyio/platoconv/internal/render"
	"github.com/hyperifyio/platoconv/internal/transcript"
)

// Run performs one conversion: read the whole input, transcode, write the
// result. Input defaults to stdin and output to stdout when no path is set.
func Run(cfg Config) error {
	input, err := readInput(cfg.InputPath)
	if err != nil {
		return err
	}

	from := strings.ToLower(strings.TrimSpace(cfg.From))
	to := strings.ToLower(strings.TrimSpace(cfg.To))

	if to == "pdf" {
		if cfg.OutputPath == "" {
			return fmt.Errorf("pdf output requires an output path")
		}
		conv, err := toConversation(from, input, cfg.AssistantName)
		if err != nil {
			return err
		}
		if err := render.WritePDF(conv, cfg.OutputPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", cfg.OutputPath).Int("messages", len(conv)).Msg("wrote pdf")
		return nil
	}

	out, err := transcode(from, to, input, cfg.AssistantName)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.OutputPath, out); err != nil {
		return err
	}
	if cfg.OutputPath != "" {
		log.Info().Str("out", cfg.OutputPath).Msg("wrote output")
	}
	return nil
}

func transcode(from, to, input, assistant string) (string, error) {
	switch from + ">" + to {
	case "html>text":
		return convert.HTMLToText(input)
	case "text>html":
		return convert.TextToHTML(input)
	case "html>cmj":
		conv, err := convert.HTMLToMessages(input, assistant)
		if err != nil {
			return "", err
		}
		return marshalCMJ(conv)
	case "text>cmj":
		conv, err := convert.TextToMessages(input)
		if err != nil {
			return "", err
		}
		return marshalCMJ(conv)
	case "cmj>text":
		conv, err := transcript.UnmarshalCMJ([]byte(input))
		if err != nil {
			return "", fmt.Errorf("decode cmj: %w", err)
		}
		return convert.MessagesToText(conv), nil
	default:
		return "", fmt.Errorf("unsupported conversion %q to %q", from, to)
	}
}

func toConversation(from, input, assistant string) (transcript.Conversation, error) {
	switch from {
	case "html":
		return convert.HTMLToMessages(input, assistant)
	case "text":
		return convert.TextToMessages(input)
	case "cmj":
		conv, err := transcript.UnmarshalCMJ([]byte(input))
		if err != nil {
			return nil, fmt.Errorf("decode cmj: %w", err)
		}
		return conv, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q", from)
	}
}

func marshalCMJ(conv transcript.Conversation) (string, error) {
	data, err := transcript.MarshalCMJ(conv)
	if err != nil {
		return "", fmt.Errorf("encode cmj: %w", err)
	}
	return string(data), nil
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func writeOutput(path, out string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(os.Stdout, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
