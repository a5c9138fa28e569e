// Package templates holds the static question templates, keyed by element
// category and proficiency tier. Every template carries exactly one
// cognitive-level tag.
package templates

import (
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

type key struct {
	category m.Category
	tier     m.Tier
}

// Library is an immutable template table. The zero value is empty; use
// Default for the built-in table.
type Library struct {
	entries map[key][]m.Template
}

// New builds a library from templates, keeping their relative order within
// each (category, tier) pair.
func New(templates []m.Template) *Library {
	lib := &Library{entries: make(map[key][]m.Template)}
	for _, tpl := range templates {
		k := key{tpl.Category, tpl.Tier}
		lib.entries[k] = append(lib.entries[k], tpl)
	}

	return lib
}

// Lookup returns a copy of the templates registered for category and tier.
func (l *Library) Lookup(category m.Category, tier m.Tier) []m.Template {
	if l == nil {
		return nil
	}

	entries := l.entries[key{category, tier}]
	out := make([]m.Template, len(entries))
	copy(out, entries)

	return out
}

var defaultLibrary = New(builtin)

// Default returns the shared built-in library. It is never mutated.
func Default() *Library {
	return defaultLibrary
}

func tpl(category m.Category, tier m.Tier, level m.CognitiveLevel, text string) m.Template {
	return m.Template{Category: category, Tier: tier, Level: level, Text: text}
}

const (
	fn   = m.CategoryFunction
	loop = m.CategoryLoop
	cond = m.CategoryCondition
	vr   = m.CategoryVariable
	algo = m.CategoryAlgorithm

	beg = m.TierBeginner
	mid = m.TierIntermediate
	adv = m.TierAdvanced

	remember   = m.LevelRemember
	understand = m.LevelUnderstand
	apply      = m.LevelApply
	analyze    = m.LevelAnalyze
	evaluate   = m.LevelEvaluate
	create     = m.LevelCreate
)

var builtin = []m.Template{
	tpl(fn, beg, understand, "What is the purpose of the function '{name}'?"),
	tpl(fn, beg, remember, "What does the function '{name}' return?"),
	tpl(fn, beg, remember, "How many parameters does function '{name}' accept?"),
	tpl(fn, beg, remember, "What are the parameters of function '{name}'?"),
	tpl(fn, beg, understand, "List all the functions in this code and describe what each one does."),
	tpl(fn, beg, remember, "What is the name of this function?"),
	tpl(fn, beg, remember, "What is the return type of function '{name}'?"),
	tpl(fn, beg, evaluate, "How would you rate the clarity of function '{name}'? Justify your answer."),
	tpl(fn, beg, evaluate, "Is the naming of function '{name}' appropriate for its purpose? Why or why not?"),

	tpl(fn, mid, analyze, "Is the function '{name}' recursive? Explain why or why not."),
	tpl(fn, mid, apply, "What would happen if function '{name}' received {params_example} as arguments?"),
	tpl(fn, mid, analyze, "What are the preconditions that must be true before calling function '{name}'?"),
	tpl(fn, mid, analyze, "What are the postconditions after function '{name}' completes execution?"),
	tpl(fn, mid, apply, "Trace the execution of function '{name}' with inputs {params_example}."),
	tpl(fn, mid, evaluate, "Does function '{name}' handle errors or edge cases effectively? Explain your reasoning."),
	tpl(fn, mid, evaluate, "How would you assess the maintainability of function '{name}'?"),

	tpl(fn, adv, evaluate, "What is the time complexity of function '{name}'? Justify your answer."),
	tpl(fn, adv, evaluate, "What is the space complexity of function '{name}'? Explain your reasoning."),
	tpl(fn, adv, create, "How could you optimize function '{name}' for better performance?"),
	tpl(fn, adv, analyze, "What edge cases might cause function '{name}' to fail? How would you handle them?"),
	tpl(fn, adv, create, "How would you modify function '{name}' to make it thread-safe?"),
	tpl(fn, adv, analyze, "Identify potential side effects of function '{name}' and how they could be eliminated."),
	tpl(fn, adv, evaluate, "Is the implementation of '{name}' optimal? Why or why not?"),
	tpl(fn, adv, evaluate, "What are the strengths and weaknesses of function '{name}'?"),
	tpl(fn, adv, evaluate, "How would you evaluate the testability of function '{name}'?"),

	tpl(loop, beg, understand, "What is the purpose of the {type} loop on line {line_num}?"),
	tpl(loop, beg, apply, "How many times will the {type} loop on line {line_num} execute with typical input?"),
	tpl(loop, beg, understand, "What happens in each iteration of the {type} loop on line {line_num}?"),
	tpl(loop, beg, remember, "What is the type of loop on line {line_num}?"),
	tpl(loop, beg, remember, "What variable controls the {type} loop on line {line_num}?"),
	tpl(loop, beg, evaluate, "Is the {type} loop on line {line_num} necessary? Why or why not?"),

	tpl(loop, mid, analyze, "What is the termination condition for the {type} loop on line {line_num}?"),
	tpl(loop, mid, apply, "What values will the variable '{variable}' take in the {type} loop?"),
	tpl(loop, mid, analyze, "What would happen if the loop on line {line_num} never terminates? How could you fix it?"),
	tpl(loop, mid, create, "How would you rewrite the {type} loop on line {line_num} using a different type of loop?"),
	tpl(loop, mid, evaluate, "Does the {type} loop on line {line_num} improve or hinder code readability? Explain."),

	tpl(loop, adv, analyze, "Analyze the efficiency of the {type} loop on line {line_num}. Can it be improved?"),
	tpl(loop, adv, analyze, "What invariants are maintained throughout the execution of the loop on line {line_num}?"),
	tpl(loop, adv, create, "How would you parallelize the loop on line {line_num} for better performance?"),
	tpl(loop, adv, evaluate, "What would be the impact on performance if you unrolled the loop on line {line_num}?"),
	tpl(loop, adv, evaluate, "Is the loop on line {line_num} optimal? Why or why not?"),
	tpl(loop, adv, evaluate, "How would you evaluate the scalability of the {type} loop on line {line_num}?"),

	tpl(cond, beg, understand, "Under what condition(s) will the code block on line {line_num} execute?"),
	tpl(cond, beg, understand, "What is the purpose of the conditional statement on line {line_num}?"),
	tpl(cond, beg, apply, "What will happen if the condition on line {line_num} evaluates to False?"),
	tpl(cond, beg, remember, "What is the condition being checked on line {line_num}?"),
	tpl(cond, beg, evaluate, "Is the conditional on line {line_num} necessary for program correctness? Why or why not?"),

	tpl(cond, mid, analyze, "Can the condition on line {line_num} be simplified? If so, how?"),
	tpl(cond, mid, analyze, "Is there any redundancy in the conditional statement on line {line_num}?"),
	tpl(cond, mid, apply, "What would happen if you reversed the condition on line {line_num}?"),
	tpl(cond, mid, evaluate, "Does the conditional on line {line_num} improve code safety? Why or why not?"),

	tpl(cond, adv, analyze, "How does the conditional on line {line_num} affect the program's control flow?"),
	tpl(cond, adv, evaluate, "Could the conditional on line {line_num} introduce any potential bugs? Explain."),
	tpl(cond, adv, create, "How would you modify the conditional on line {line_num} to handle edge cases?"),
	tpl(cond, adv, analyze, "Analyze the short-circuit evaluation in the condition on line {line_num}. Does it affect performance?"),
	tpl(cond, adv, evaluate, "Is the condition on line {line_num} necessary? Why or why not?"),
	tpl(cond, adv, evaluate, "How would you evaluate the robustness of the conditional on line {line_num}?"),

	tpl(vr, beg, understand, "What is the purpose of variable '{name}'?"),
	tpl(vr, beg, remember, "What is the data type of variable '{name}'?"),
	tpl(vr, beg, remember, "What is the initial value of '{name}'?"),
	tpl(vr, beg, remember, "What is the name of this variable?"),
	tpl(vr, beg, evaluate, "Is the variable '{name}' named appropriately? Why or why not?"),

	tpl(vr, mid, analyze, "How many times is the variable '{name}' modified in the code?"),
	tpl(vr, mid, apply, "What is the value of '{name}' after line {line_num}?"),
	tpl(vr, mid, analyze, "What would happen if '{name}' was not initialized?"),
	tpl(vr, mid, analyze, "Could the variable '{name}' be declared with a different scope? What impact would that have?"),
	tpl(vr, mid, evaluate, "Does the use of variable '{name}' make the code more readable or less readable? Explain."),

	tpl(vr, adv, evaluate, "Is the variable '{name}' used optimally? Could its usage be improved?"),
	tpl(vr, adv, analyze, "Identify any potential issues with the way variable '{name}' is used in the code."),
	tpl(vr, adv, evaluate, "Could variable '{name}' cause any memory-related issues? Explain."),
	tpl(vr, adv, create, "How would making variable '{name}' immutable (const/final) affect the code?"),
	tpl(vr, adv, evaluate, "Is the choice of variable '{name}' appropriate for its use? Why or why not?"),
	tpl(vr, adv, evaluate, "How would you evaluate the impact of variable '{name}' on code maintainability?"),

	tpl(algo, beg, remember, "What algorithm is implemented in this code?"),
	tpl(algo, beg, understand, "What is the purpose of this algorithm?"),
	tpl(algo, beg, understand, "What problem does this algorithm solve?"),
	tpl(algo, beg, remember, "What is the name of the algorithm used here?"),
	tpl(algo, beg, evaluate, "Is this algorithm appropriate for the problem? Why or why not?"),

	tpl(algo, mid, understand, "Describe the main steps of this algorithm."),
	tpl(algo, mid, apply, "What would happen if the input to this algorithm was changed?"),
	tpl(algo, mid, apply, "What would this {algorithm} implementation produce for the input {example_input}?"),
	tpl(algo, mid, analyze, "What are the limitations of this algorithm?"),
	tpl(algo, mid, evaluate, "How would you evaluate the efficiency of this algorithm for large inputs?"),

	tpl(algo, adv, evaluate, "Evaluate the efficiency of this algorithm. Is it optimal?"),
	tpl(algo, adv, create, "How could you improve this algorithm?"),
	tpl(algo, adv, evaluate, "What are the strengths and weaknesses of this algorithm?"),
	tpl(algo, adv, evaluate, "Is this algorithm the best choice for the problem? Why or why not?"),
	tpl(algo, adv, evaluate, "How would you evaluate the scalability of this algorithm?"),
}
