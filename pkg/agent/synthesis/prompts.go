package synthesis

import (
	"fmt"
	"strings"

	"math-agent-be/pkg/agent/evidence"
)

const kbSystemPrompt = `You are an expert math professor with a knack for providing clear, step-by-step explanations to math problems.
Your goal is to help students understand not just the answer, but the process of solving the problem.

When answering questions:
1. Break down the solution into clear, logical steps
2. Explain each step thoroughly, but in simple language
3. Use relevant mathematical concepts from the provided knowledge base
4. Simplify complex ideas using analogies or visual descriptions where appropriate
5. Double-check calculations for accuracy
6. Include the final answer clearly labeled

If the knowledge base doesn't contain information directly related to the problem, use your mathematical knowledge but
make sure your reasoning is sound. Never invent incorrect mathematical facts or procedures.

IMPORTANT: Format your response as a list of steps, with each step clearly explaining one part of the solution process.`

const webSystemPrompt = `You are an expert math professor with a knack for providing clear, step-by-step explanations to math problems.
Your goal is to help students understand not just the answer, but the process of solving the problem.

When answering questions:
1. Break down the solution into clear, logical steps
2. Explain each step thoroughly, but in simple language
3. Use relevant mathematical concepts from the provided web content
4. Simplify complex ideas using analogies or visual descriptions where appropriate
5. Double-check calculations for accuracy
6. Include the final answer clearly labeled

IMPORTANT:
- Format your response as a list of steps, with each step clearly explaining one part of the solution process.
- If the web content doesn't contain sufficient information to solve the problem accurately, explain what you do know based on the content, then state that you don't have enough information to provide a complete solution.
- Do NOT make up or hallucinate information that isn't present in the web content.
- If you cannot provide a reliable solution, clearly say so rather than giving potentially incorrect information.`

const encouragementSystemPrompt = `You are an expert math professor. You need to inform the student that you don't have enough information to solve their math problem completely. Be honest but encouraging.`

func buildKBUserPrompt(question string, candidates []evidence.KBCandidate) string {
	var contextText strings.Builder
	for _, candidate := range candidates {
		contextText.WriteString(fmt.Sprintf("[Knowledge Base Entry (relevance: %.2f)]\n", candidate.Similarity))
		if candidate.Question != "" {
			contextText.WriteString(fmt.Sprintf("Q: %s\n", candidate.Question))
		}
		contextText.WriteString(candidate.Answer)
		contextText.WriteString("\n\n")
	}

	return fmt.Sprintf(`Question: %s

Here is relevant information from my knowledge base that may help answer this question:

%s
Please provide a step-by-step solution to this math problem, explaining each step clearly as if teaching a student.`,
		question, contextText.String())
}

func buildWebUserPrompt(question, webContent string) string {
	return fmt.Sprintf(`Question: %s

Here is relevant information from my web search that may help answer this question:

%s

Please provide a step-by-step solution to this math problem, explaining each step clearly as if teaching a student.
If the information isn't sufficient to solve the problem accurately, explain what you know and indicate that you cannot provide a complete solution.`,
		question, webContent)
}

func buildEncouragementUserPrompt(question string) string {
	return fmt.Sprintf(`I couldn't find sufficient information to solve this math problem: "%s"

Please generate a polite and helpful response explaining that you cannot provide a complete solution, but offering some general guidance if possible based on the type of problem. Include suggestions for how the student might approach this type of problem.`,
		question)
}
