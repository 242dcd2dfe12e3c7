// Package agent implements the conversational travel-planning agent.
//
// The Agent type binds one chat model, one tool registry and one
// bounded conversation history, and drives the tool-calling loop: the
// model is invoked with the system prompt, the retained history and the
// available tools; tool calls it requests are dispatched and their
// results fed back; a response without tool calls ends the turn. The
// loop is capped (5 iterations in fast mode, 8 in full mode); at the
// cap a single tools-disabled call produces a best-effort answer from
// the results gathered so far.
//
// Each user message is first classified into small talk, confirmation
// or planning. The classification selects the system prompt variant:
// small talk gets a light prompt with no tool guidance, planning turns
// get the full (or fast-mode) prompt. Classification failures never
// fail the turn; a keyword heuristic stands in.
//
// The conversation history keeps the last ten messages. Tool calls and
// tool results from intermediate iterations are not retained across
// turns; only user messages and final assistant replies are.
package agent
