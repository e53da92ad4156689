// main package for the kaztts command line client. It talks to a running
// kaztts-service over its HTTP API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Flag descriptions.
const (
	flagServerDesc       = "Base URL of the kaztts-service HTTP API"
	flagTextDesc         = "Text to synthesize"
	flagFileDesc         = "File containing text to synthesize"
	flagScriptDesc       = "Synthesis script: cyrillic or arabic"
	flagModeDesc         = "Inference mode: direct or segmented"
	flagPromptSpeechDesc = "Reference audio file for voice cloning (.wav, .mp3, .flac)"
	flagPromptTextDesc   = "Transcript of the reference audio"
	flagOutputDesc       = "Output file path (.wav)"
	flagHealthDesc       = "Check service health and exit"
)

// Flag names.
const (
	flagServer       = "server"
	flagText         = "text"
	flagFile         = "file"
	flagScript       = "script"
	flagMode         = "mode"
	flagPromptSpeech = "prompt-speech"
	flagPromptText   = "prompt-text"
	flagOutput       = "output"
	flagHealth       = "health"
)

// Defaults.
const (
	defaultServerURL = "http://localhost:8080"
	defaultScript    = "cyrillic"
	defaultMode      = "segmented"
	requestTimeout   = 10 * time.Minute
	healthTimeout    = 10 * time.Second
)

// Error and log messages.
const (
	errEitherTextOrFile  = "either --text or --file must be provided"
	errCannotSpecifyBoth = "cannot specify both --text and --file"
	errFmtReadTextFile   = "failed to read text file: %w"
	errFmtRequestFailed  = "synthesis request failed: %w"
	errFmtServiceError   = "service reported failure: %s"
	errFmtDownloadAudio  = "failed to download audio: %w"
	errFmtWriteOutput    = "failed to write output file: %w"
	errFmtHealthCheck    = "health check failed: %w"

	msgServiceHealthy = "service is healthy"
	msgFmtConverted   = "converted text: %s\n"
	msgFmtGenerated   = "generated %s (%d segments, %.2fs)\n"
)

// appFlags holds the parsed command-line flag values.
type appFlags struct {
	server       string
	text         string
	file         string
	script       string
	mode         string
	promptSpeech string
	promptText   string
	output       string
	health       bool
}

// synthesisReply mirrors the JSON body of a /api/tts response.
type synthesisReply struct {
	Success         bool    `json:"success"`
	Detail          string  `json:"detail"`
	Filename        string  `json:"filename"`
	AudioURL        string  `json:"audio_url"`
	OriginalText    string  `json:"original_text"`
	ConvertedText   string  `json:"converted_text"`
	SegmentCount    int     `json:"segment_count"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func main() {
	err := run()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	flags := parseFlags()

	if flags.health {
		return checkHealth(flags.server)
	}

	text, err := resolveText(flags)
	if err != nil {
		return err
	}

	return synthesize(flags, text)
}

// parseFlags defines and parses command-line flags, returning them in a struct.
func parseFlags() appFlags {
	var flags appFlags

	flag.StringVar(&flags.server, flagServer, defaultServerURL, flagServerDesc)
	flag.StringVar(&flags.text, flagText, "", flagTextDesc)
	flag.StringVar(&flags.file, flagFile, "", flagFileDesc)
	flag.StringVar(&flags.script, flagScript, defaultScript, flagScriptDesc)
	flag.StringVar(&flags.mode, flagMode, defaultMode, flagModeDesc)
	flag.StringVar(&flags.promptSpeech, flagPromptSpeech, "", flagPromptSpeechDesc)
	flag.StringVar(&flags.promptText, flagPromptText, "", flagPromptTextDesc)
	flag.StringVar(&flags.output, flagOutput, "", flagOutputDesc)
	flag.BoolVar(&flags.health, flagHealth, false, flagHealthDesc)
	flag.Parse()

	return flags
}

// resolveText picks the text source: the --text flag or the --file contents.
func resolveText(flags appFlags) (string, error) {
	if flags.text == "" && flags.file == "" {
		flag.Usage()

		return "", errors.New(errEitherTextOrFile)
	}

	if flags.text != "" && flags.file != "" {
		return "", errors.New(errCannotSpecifyBoth)
	}

	if flags.text != "" {
		return flags.text, nil
	}

	data, err := os.ReadFile(flags.file)
	if err != nil {
		return "", fmt.Errorf(errFmtReadTextFile, err)
	}

	return string(data), nil
}

// checkHealth probes the service's health endpoint.
func checkHealth(serverURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, serverURL+"/api/health", nil)
	if err != nil {
		return fmt.Errorf(errFmtHealthCheck, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf(errFmtHealthCheck, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return fmt.Errorf(errFmtHealthCheck,
			fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body))))
	}

	fmt.Println(msgServiceHealthy)

	return nil
}

// synthesize posts the request, then downloads and saves the artifact.
func synthesize(flags appFlags, text string) error {
	body, contentType, err := buildForm(flags, text)
	if err != nil {
		return err
	}

	reply, err := postSynthesis(flags.server, body, contentType)
	if err != nil {
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = reply.Filename
	}

	err = downloadAudio(flags.server+reply.AudioURL, outputPath)
	if err != nil {
		return err
	}

	if reply.ConvertedText != reply.OriginalText {
		fmt.Printf(msgFmtConverted, reply.ConvertedText)
	}

	fmt.Printf(msgFmtGenerated, outputPath, reply.SegmentCount, reply.DurationSeconds)

	return nil
}

// buildForm assembles the multipart request body.
func buildForm(flags appFlags, text string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"text":        text,
		"script":      flags.script,
		"mode":        flags.mode,
		"prompt_text": flags.promptText,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}

		err := writer.WriteField(name, value)
		if err != nil {
			return nil, "", fmt.Errorf(errFmtRequestFailed, err)
		}
	}

	if flags.promptSpeech != "" {
		err := attachPromptFile(writer, flags.promptSpeech)
		if err != nil {
			return nil, "", err
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf(errFmtRequestFailed, err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func attachPromptFile(writer *multipart.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(errFmtRequestFailed, err)
	}

	part, err := writer.CreateFormFile("prompt_speech", filepath.Base(path))
	if err != nil {
		return fmt.Errorf(errFmtRequestFailed, err)
	}

	_, err = part.Write(data)
	if err != nil {
		return fmt.Errorf(errFmtRequestFailed, err)
	}

	return nil
}

func postSynthesis(
	serverURL string,
	body *bytes.Buffer,
	contentType string,
) (*synthesisReply, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, serverURL+"/api/tts", body)
	if err != nil {
		return nil, fmt.Errorf(errFmtRequestFailed, err)
	}

	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(errFmtRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var reply synthesisReply

	err = json.NewDecoder(resp.Body).Decode(&reply)
	if err != nil {
		return nil, fmt.Errorf(errFmtRequestFailed, err)
	}

	if !reply.Success {
		return nil, fmt.Errorf(errFmtServiceError, reply.Detail)
	}

	return &reply, nil
}

func downloadAudio(audioURL, outputPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return fmt.Errorf(errFmtDownloadAudio, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf(errFmtDownloadAudio, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(errFmtDownloadAudio, errors.New(resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf(errFmtDownloadAudio, err)
	}

	err = os.WriteFile(outputPath, data, 0o600)
	if err != nil {
		return fmt.Errorf(errFmtWriteOutput, err)
	}

	return nil
}
