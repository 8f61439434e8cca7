package patch

// modelTableAnchor is the opening line of the generated model table. The
// Antigravity entries are inserted directly after it, so a file already
// carrying them is detected by the presence of the combined text.
const modelTableAnchor = `var MODELS_GENERATED = {`

// modelTable is the literal Antigravity model block. Kept as a fixed
// template rather than generated from the model list: the inserted text
// must be byte-stable across runs for the idempotence check to hold.
const modelTable = `
  "antigravity/gemini-3-pro": {
    name: "Gemini 3 Pro (Antigravity)",
    provider: "antigravity",
    baseURL: "https://antigravity.googleapis.com/v1",
    cost: { input: 0, output: 0, cacheRead: 0, cacheWrite: 0 },
    contextWindow: 1048576,
    maxOutputTokens: 65536
  },
  "antigravity/gemini-3-flash": {
    name: "Gemini 3 Flash (Antigravity)",
    provider: "antigravity",
    baseURL: "https://antigravity.googleapis.com/v1",
    cost: { input: 0, output: 0, cacheRead: 0, cacheWrite: 0 },
    contextWindow: 1048576,
    maxOutputTokens: 65536
  },
  "antigravity/claude-sonnet-4-5": {
    name: "Claude Sonnet 4.5 (Antigravity)",
    provider: "antigravity",
    baseURL: "https://antigravity.googleapis.com/v1",
    cost: { input: 0, output: 0, cacheRead: 0, cacheWrite: 0 },
    contextWindow: 1048576,
    maxOutputTokens: 65536
  },
  "antigravity/claude-sonnet-4-5-thinking": {
    name: "Claude Sonnet 4.5 Thinking (Antigravity)",
    provider: "antigravity",
    baseURL: "https://antigravity.googleapis.com/v1",
    cost: { input: 0, output: 0, cacheRead: 0, cacheWrite: 0 },
    contextWindow: 1048576,
    maxOutputTokens: 65536
  },
  "antigravity/gpt-oss-120b": {
    name: "GPT-OSS 120B (Antigravity)",
    provider: "antigravity",
    baseURL: "https://antigravity.googleapis.com/v1",
    cost: { input: 0, output: 0, cacheRead: 0, cacheWrite: 0 },
    contextWindow: 131072,
    maxOutputTokens: 32768
  },`
