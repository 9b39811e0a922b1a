// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/httpclient"
	"github.com/bestbox/bestbox/pkg/protocol"
)

// OpenAIProvider talks to any OpenAI-compatible /chat/completions endpoint.
// On-prem deployments point it at a local vLLM server.
type OpenAIProvider struct {
	cfg        config.LLMConfig
	apiKey     string
	httpClient *httpclient.Client
}

type openAIRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	MaxTokens      *int                  `json:"max_tokens,omitempty"`
	Temperature    float64               `json:"temperature"`
	Stream         bool                  `json:"stream"`
	Tools          []openAITool          `json:"tools,omitempty"`
	ToolChoice     string                `json:"tool_choice,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    string           `json:"content"`
	ToolCalls  []openAIToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openAITool struct {
	Type     string             `json:"type"`
	Function openAIToolFunction `json:"function"`
}

type openAIToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type openAIToolCall struct {
	ID       string             `json:"id"`
	Type     string             `json:"type"`
	Function openAIFunctionCall `json:"function"`
}

type openAIFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openAIResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *openAIJSONSchema `json:"json_schema,omitempty"`
}

type openAIJSONSchema struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict,omitempty"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content   string           `json:"content"`
			ToolCalls []openAIToolCall `json:"tool_calls,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage openAIUsage  `json:"usage"`
	Error *openAIError `json:"error,omitempty"`
}

type openAIStreamResponse struct {
	Choices []struct {
		Delta struct {
			Content          string           `json:"content,omitempty"`
			ReasoningContent string           `json:"reasoning_content,omitempty"`
			ToolCalls        []openAIToolCall `json:"tool_calls,omitempty"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *openAIUsage `json:"usage,omitempty"`
	Error *openAIError `json:"error,omitempty"`
}

// NewOpenAIProvider builds a provider from config. The API key is resolved
// from the environment variable named by cfg.APIKeyEnv; an empty key is
// allowed for unauthenticated local inference servers.
func NewOpenAIProvider(cfg config.LLMConfig) *OpenAIProvider {
	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}

	httpClient := httpclient.New(
		httpclient.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		}),
		httpclient.WithMaxRetries(3),
		httpclient.WithBaseDelay(200*time.Millisecond),
		httpclient.WithMaxDelay(4*time.Second),
		httpclient.WithHeaderParser(httpclient.ParseRetryAfterHeader),
	)

	return &OpenAIProvider{cfg: cfg, apiKey: apiKey, httpClient: httpClient}
}

func (p *OpenAIProvider) ModelName() string { return p.cfg.Model }

func (p *OpenAIProvider) ContextWindow() int { return p.cfg.ContextTokens }

// Generate runs a non-streaming completion. Tool-call argument strings that
// fail to parse are surfaced via ErrMalformedToolCall so the caller
// can run bounded repair.
func (p *OpenAIProvider) Generate(ctx context.Context, messages []*protocol.Message, tools []ToolDefinition) (string, []*protocol.ToolCall, int, error) {
	tracer := otel.Tracer("bestbox.llm")
	ctx, span := tracer.Start(ctx, "llm.generate",
		trace.WithAttributes(
			attribute.String("llm.model", p.cfg.Model),
			attribute.Bool("llm.streaming", false),
		),
	)
	defer span.End()

	request := p.buildRequest(messages, false, tools)

	response, err := p.makeRequest(ctx, request)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", nil, 0, err
	}

	if response.Error != nil {
		apiErr := protocol.NewError(protocol.KindUpstreamUnavailable,
			fmt.Sprintf("model endpoint returned error: %s", response.Error.Message))
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, response.Error.Message)
		return "", nil, 0, apiErr
	}
	if len(response.Choices) == 0 {
		err := protocol.NewError(protocol.KindUpstreamUnavailable, "model endpoint returned no choices")
		span.RecordError(err)
		return "", nil, 0, err
	}

	choice := response.Choices[0]
	text := StripReasoningPreamble(choice.Message.Content)

	var toolCalls []*protocol.ToolCall
	if len(choice.Message.ToolCalls) > 0 {
		toolCalls, err = parseToolCalls(choice.Message.ToolCalls)
		if err != nil {
			span.RecordError(err)
			return text, nil, response.Usage.TotalTokens, err
		}
	}

	span.SetAttributes(
		attribute.Int("llm.tokens_input", response.Usage.PromptTokens),
		attribute.Int("llm.tokens_output", response.Usage.CompletionTokens),
		attribute.Int("llm.tool_calls", len(toolCalls)),
	)
	span.SetStatus(codes.Ok, "")
	return text, toolCalls, response.Usage.TotalTokens, nil
}

// GenerateStructured constrains the completion to a JSON schema. Local
// inference servers that reject json_schema fall back to json_object.
func (p *OpenAIProvider) GenerateStructured(ctx context.Context, messages []*protocol.Message, structured *StructuredConfig) (string, int, error) {
	request := p.buildRequest(messages, false, nil)
	if structured != nil {
		if structured.Schema != nil {
			request.ResponseFormat = &openAIResponseFormat{
				Type: "json_schema",
				JSONSchema: &openAIJSONSchema{
					Name:   structured.Name,
					Schema: structured.Schema,
					Strict: true,
				},
			}
		} else {
			request.ResponseFormat = &openAIResponseFormat{Type: "json_object"}
		}
	}

	response, err := p.makeRequest(ctx, request)
	if err != nil {
		return "", 0, err
	}
	if response.Error != nil {
		return "", 0, protocol.NewError(protocol.KindUpstreamUnavailable,
			fmt.Sprintf("model endpoint returned error: %s", response.Error.Message))
	}
	if len(response.Choices) == 0 {
		return "", 0, protocol.NewError(protocol.KindUpstreamUnavailable, "model endpoint returned no choices")
	}

	text := StripReasoningPreamble(response.Choices[0].Message.Content)
	return text, response.Usage.TotalTokens, nil
}

// GenerateStreaming streams the completion. Reasoning deltas are emitted as
// "thinking" chunks so the runtime can surface them as think steps.
func (p *OpenAIProvider) GenerateStreaming(ctx context.Context, messages []*protocol.Message, tools []ToolDefinition) (<-chan StreamChunk, error) {
	request := p.buildRequest(messages, true, tools)

	outputCh := make(chan StreamChunk, 100)
	go func() {
		defer close(outputCh)
		if err := p.makeStreamingRequest(ctx, request, outputCh); err != nil {
			outputCh <- StreamChunk{Type: "error", Error: err}
		}
	}()
	return outputCh, nil
}

func roleToWire(role protocol.Role) string {
	switch role {
	case protocol.RoleUser:
		return "user"
	case protocol.RoleAssistant:
		return "assistant"
	case protocol.RoleToolResult:
		return "tool"
	default:
		return "system"
	}
}

func (p *OpenAIProvider) buildRequest(messages []*protocol.Message, stream bool, tools []ToolDefinition) openAIRequest {
	wireMessages := make([]openAIMessage, 0, len(messages))
	for _, msg := range messages {
		wm := openAIMessage{
			Role:       roleToWire(msg.Role),
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
		}
		if len(msg.ToolCalls) > 0 {
			wm.ToolCalls = make([]openAIToolCall, len(msg.ToolCalls))
			for j, tc := range msg.ToolCalls {
				argsJSON, _ := json.Marshal(tc.Args)
				wm.ToolCalls[j] = openAIToolCall{
					ID:   tc.ID,
					Type: "function",
					Function: openAIFunctionCall{
						Name:      tc.Name,
						Arguments: string(argsJSON),
					},
				}
			}
		}
		wireMessages = append(wireMessages, wm)
	}

	request := openAIRequest{
		Model:       p.cfg.Model,
		Messages:    wireMessages,
		Temperature: p.cfg.Temperature,
		Stream:      stream,
	}
	if p.cfg.MaxTokens > 0 {
		maxTokens := p.cfg.MaxTokens
		request.MaxTokens = &maxTokens
	}
	if len(tools) > 0 {
		request.Tools = make([]openAITool, len(tools))
		for i, tool := range tools {
			request.Tools[i] = openAITool{Type: "function", Function: openAIToolFunction(tool)}
		}
		request.ToolChoice = "auto"
	}
	return request
}

func parseToolCalls(wire []openAIToolCall) ([]*protocol.ToolCall, error) {
	result := make([]*protocol.ToolCall, len(wire))
	for i, tc := range wire {
		args, err := RepairToolArgs(tc.Function.Arguments)
		if err != nil {
			return nil, fmt.Errorf("%w: tool %s: %w", ErrMalformedToolCall, tc.Function.Name, err)
		}
		result[i] = &protocol.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		}
	}
	return result, nil
}

func (p *OpenAIProvider) newRequest(ctx context.Context, request openAIRequest) (*http.Request, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(requestBody)), nil
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}
	return req, nil
}

// classifyTransportError maps transport failures onto the error taxonomy.
// Exhausted retries and connection errors become UpstreamUnavailable so the
// server answers 503.
func classifyTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return protocol.WrapError(protocol.KindDeadlineExceeded, "model request deadline exceeded", err)
	}
	if httpclient.IsRetriesExhausted(err) {
		return protocol.WrapError(protocol.KindUpstreamUnavailable, "model endpoint still failing after retries", err)
	}
	return protocol.WrapError(protocol.KindUpstreamUnavailable, "model endpoint unreachable", err)
}

func (p *OpenAIProvider) makeRequest(ctx context.Context, request openAIRequest) (*openAIResponse, error) {
	req, err := p.newRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if resp != nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return nil, upstreamStatusError(resp.StatusCode, body)
		}
	}
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp == nil {
		return nil, protocol.NewError(protocol.KindUpstreamUnavailable, "no response received from model endpoint")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var response openAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &response, nil
}

func upstreamStatusError(status int, body []byte) error {
	message := string(body)
	var errorResp struct {
		Error openAIError `json:"error"`
	}
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		message = errorResp.Error.Message
	}

	kind := protocol.KindUpstreamUnavailable
	if status == http.StatusBadRequest {
		// vLLM reports prompt-too-long as a 400.
		kind = protocol.KindContextOverflow
	}
	return protocol.NewError(kind, fmt.Sprintf("model endpoint returned status %d: %s", status, message))
}

func (p *OpenAIProvider) makeStreamingRequest(ctx context.Context, request openAIRequest, outputCh chan<- StreamChunk) error {
	req, err := p.newRequest(ctx, request)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if resp != nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return upstreamStatusError(resp.StatusCode, body)
		}
	}
	if err != nil {
		return classifyTransportError(err)
	}
	if resp == nil {
		return protocol.NewError(protocol.KindUpstreamUnavailable, "no response received from model endpoint")
	}

	reader := bufio.NewReader(resp.Body)
	toolCallsMap := make(map[int]*openAIToolCall)
	totalTokens := 0

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return protocol.WrapError(protocol.KindUpstreamUnavailable, "model stream interrupted", err)
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 || !bytes.HasPrefix(line, []byte("data: ")) {
			continue
		}
		line = line[6:]
		if bytes.Equal(line, []byte("[DONE]")) {
			break
		}

		var streamResp openAIStreamResponse
		if err := json.Unmarshal(line, &streamResp); err != nil {
			continue
		}
		if streamResp.Error != nil {
			return protocol.NewError(protocol.KindUpstreamUnavailable,
				fmt.Sprintf("model endpoint returned error: %s", streamResp.Error.Message))
		}
		if streamResp.Usage != nil {
			totalTokens = streamResp.Usage.TotalTokens
		}
		if len(streamResp.Choices) == 0 {
			continue
		}

		choice := streamResp.Choices[0]

		if choice.Delta.ReasoningContent != "" {
			outputCh <- StreamChunk{Type: "thinking", Text: choice.Delta.ReasoningContent}
		}
		if choice.Delta.Content != "" {
			outputCh <- StreamChunk{Type: "text", Text: choice.Delta.Content}
		}

		for _, deltaCall := range choice.Delta.ToolCalls {
			if deltaCall.ID != "" {
				toolCallsMap[len(toolCallsMap)] = &openAIToolCall{
					ID:       deltaCall.ID,
					Type:     deltaCall.Type,
					Function: deltaCall.Function,
				}
			} else if len(toolCallsMap) > 0 {
				lastIdx := len(toolCallsMap) - 1
				if toolCall, exists := toolCallsMap[lastIdx]; exists {
					toolCall.Function.Arguments += deltaCall.Function.Arguments
				}
			}
		}

		if choice.FinishReason == "stop" || choice.FinishReason == "tool_calls" {
			accumulated := make([]openAIToolCall, 0, len(toolCallsMap))
			for i := 0; i < len(toolCallsMap); i++ {
				if toolCall, exists := toolCallsMap[i]; exists {
					accumulated = append(accumulated, *toolCall)
				}
			}
			if len(accumulated) > 0 {
				toolCalls, err := parseToolCalls(accumulated)
				if err != nil {
					return err
				}
				for _, tc := range toolCalls {
					outputCh <- StreamChunk{Type: "tool_call", ToolCall: tc}
				}
			}
			break
		}
	}

	outputCh <- StreamChunk{Type: "done", Tokens: totalTokens}
	return nil
}
