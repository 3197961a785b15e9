package services

import (
	"fmt"
	"strings"
)

// Target models understood by the video prompt builder.
const (
	TargetMidjourney      = "Midjourney"
	TargetStableDiffusion = "Stable Diffusion"
	TargetDALLE3          = "DALL-E 3"
)

const imageToPromptInstruction = "Act as an expert AI artist. Analyze this image in extreme detail. " +
	"Then, write a professional text-to-image prompt that would recreate this exact image. " +
	"Specify the art style (e.g., cinematic, oil painting, 3D render), lighting conditions, " +
	"camera type/angle, textures, and main subject details. The output should be the raw prompt only."

func translateAndRefineInstruction(text string) string {
	return fmt.Sprintf("Translate the following Arabic concept into a detailed English artistic description "+
		"suitable for AI image generation, preserving the mood and nuance. Input: %q", text)
}

func magicEnhanceInstruction(input string) string {
	return fmt.Sprintf("You are an expert Prompt Engineer. Take this simple input '%s' and expand it into a "+
		"sophisticated prompt including keywords for lighting (e.g., volumetric, cinematic), camera angles "+
		"(e.g., wide shot), and texture (e.g., 8k, unreal engine 5 render). Keep it under 50 words.", input)
}

func promptDoctorInstruction(prompt string) string {
	return fmt.Sprintf("Act as a 'Prompt Doctor'. Analyze this image generation prompt and suggest 3 specific "+
		"improvements to make it better (lighting, composition, style). Also, rate the prompt from 1 to 10. "+
		"Format the output clearly. Prompt: %q", prompt)
}

func translateToArabicInstruction(text string) string {
	return "Translate the following text to professional Arabic:\n\n" + text
}

// videoPromptInstruction builds the final-generation instruction. DALL-E 3 has
// no negative prompt, so exclusions are folded into the instruction itself.
func videoPromptInstruction(basePrompt, styleSuffix, aspectRatio, targetModel, negativePrompt string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert AI Video Prompt Engineer.\n")
	fmt.Fprintf(&sb, "Task: Create a final prompt for %s.\n\n", targetModel)
	fmt.Fprintf(&sb, "Input Description: %s\n", basePrompt)
	fmt.Fprintf(&sb, "Style Keywords: %s\n", styleSuffix)
	fmt.Fprintf(&sb, "Aspect Ratio: %s\n", aspectRatio)

	if targetModel == TargetDALLE3 {
		sb.WriteString("\nRequirement: DALL-E 3 does not support negative prompts directly.\n")
		fmt.Fprintf(&sb, "Rewrite the prompt to explicitly mention avoiding these elements: %q.\n", negativePrompt)
		sb.WriteString("Integrate this exclusion naturally into the description.\n")
	} else {
		sb.WriteString("\nRequirement: Return the prompt text.\n")
	}
	sb.WriteString("\nConstraint: Keep it under 100 words. Just return the prompt text.\n")
	return sb.String()
}

// appendNegativePrompt adds the model-specific negative prompt syntax.
func appendNegativePrompt(prompt, aspectRatio, targetModel, negativePrompt string) string {
	negativePrompt = strings.TrimSpace(negativePrompt)
	if negativePrompt == "" {
		return prompt
	}
	switch targetModel {
	case TargetMidjourney:
		return fmt.Sprintf("%s --no %s --ar %s", prompt, negativePrompt, aspectRatio)
	case TargetStableDiffusion:
		return prompt + "\nNegative prompt: " + negativePrompt
	default:
		return prompt
	}
}

// summarizeIdea shortens an idea to 30 runes for the history list.
func summarizeIdea(idea string) string {
	r := []rune(idea)
	if len(r) <= 30 {
		return idea
	}
	return string(r[:30]) + "..."
}
