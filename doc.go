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

// Package bestbox is the agent orchestration runtime for the BestBox
// appliance: an on-prem box that answers factory questions ("how many open
// purchase orders from vendor X?", "为什么这个件会披锋?") by routing each
// request to a domain specialist that can query ERP/CRM/IT/OA backends and
// search a bilingual manufacturing knowledge base, all on local GPUs.
//
// # Quick Start
//
// Install the server:
//
//	go install github.com/bestbox/bestbox/cmd/bestbox@latest
//
// Point a configuration at the local inference endpoint and a backend:
//
//	llm:
//	  base_url: http://localhost:8000/v1
//	  model: qwen2.5-72b-instruct
//	database:
//	  driver: sqlite3
//	  dsn: bestbox.db
//	integrations:
//	  erp:
//	    backend: demo
//
// Start serving:
//
//	bestbox serve --config bestbox.yaml
//
// Then talk to it with any OpenAI-compatible client against
// POST /v1/chat/completions.
//
// # Architecture
//
// A supervisor routes each turn to one specialist (erp, crm, it, oa, mold or
// general). The specialist runs a bounded tool loop: business-system queries
// go through backend adapters, knowledge questions through hybrid
// dense+sparse retrieval with reranking. Write-class actions park the turn
// for human approval. Every state transition is checkpointed, so turns
// survive process restarts and approvals that arrive hours later.
//
//	Client → HTTP API → Runtime (router → specialist loop) → Tools
//	                     ↘ checkpoints / sessions / audit (SQL)
//	                     ↘ retriever (qdrant + embed + rerank)
//	                     ↘ GPU scheduler (LLM and OCR-VL leases)
//
// The packages under pkg/ can also be used individually; pkg/runtime drives
// the state machine, pkg/server exposes it over HTTP.
package bestbox
