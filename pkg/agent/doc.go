// agent wires the city fact tools, optional MCP tool servers and a chat
// model into a single ask-and-answer loop.
//
// An agent is, in essence, a control loop calling LLM tools repeatedly
// until the model settles on a text reply. The difference between agent
// A and agent B is the prompt, the model and the available tools.
package agent
