package catalog

const (
	aliasAc = `!f() { if ! git rev-parse --is-inside-work-tree >/dev/null 2>&1; then exit 0; fi; if ! command -v aichat >/dev/null 2>&1; then exit 0; fi; if git diff --cached --quiet; then if git diff --quiet && [ -z "$(git ls-files --others --exclude-standard)" ]; then exit 0; fi; git add -A; fi; diff=$(git diff --cached); msg=$(printf "%s" "$diff" | aichat "依據 diff 產生高解析度、技術導向、精準且簡潔的繁體中文 Git commit 訊息。採用 Conventional Commits 1.0.0 格式撰寫。不得包含多餘語句，只輸出 commit title 與必要的 body。"); git commit -m "$msg" && git log -1; }; f`
	aliasUndo = `!f() { if ! git rev-parse --is-inside-work-tree >/dev/null 2>&1; then echo "[undo] skip: not a git repository"; exit 0; fi; echo "[undo] Undo Last Commit: git reset HEAD~"; git reset HEAD~; }; f`
	aliasCc   = `!grcc() { git reset --hard && git clean -fdx ;}; read -p 'Do you want to run the <<< git reset --hard && git clean -fdx >>> command? (Y/N) ' answer && [[ $answer == [Yy] ]] && grcc`
	aliasTlog = `!start 'C:\PROGRA~1\TortoiseGit\bin\TortoiseGitProc.exe' /command:log /path:.`
)

// TortoiseGitPath is the executable whose presence enables the tlog alias.
const TortoiseGitPath = `C:/PROGRA~1/TortoiseGit/bin/TortoiseGitProc.exe`

// Default returns the built-in catalog in application order.
func Default() []*Definition {
	return []*Definition{
		{Key: "help.autocorrect", Value: "30"},

		{Key: "init.defaultBranch", Value: "main"},
		{Key: "core.autocrlf", Value: "input"},
		{Key: "core.safecrlf", Value: "true"},
		{Key: "core.quotepath", Value: "false"},

		{Key: "color.diff", Value: "auto"},
		{Key: "color.status", Value: "auto"},
		{Key: "color.branch", Value: "auto"},

		{Key: "alias.ci", Value: "commit"},
		{Key: "alias.cm", Value: "commit --amend -C HEAD"},
		{Key: "alias.co", Value: "checkout"},
		{Key: "alias.st", Value: "status"},
		{Key: "alias.sts", Value: "status -s"},
		{Key: "alias.br", Value: "branch"},
		{Key: "alias.re", Value: "remote"},
		{Key: "alias.di", Value: "diff"},
		{Key: "alias.type", Value: "cat-file -t"},
		{Key: "alias.dump", Value: "cat-file -p"},
		{Key: "alias.lo", Value: "log --oneline"},
		{Key: "alias.ls", Value: "log --show-signature"},
		{Key: "alias.ll", Value: "log --pretty=format:'%h %ad | %s%d [%Cgreen%an%Creset]' --graph --date=short"},
		{Key: "alias.lg", Value: "log --graph --pretty=format:'%Cred%h%Creset %ad |%C(yellow)%d%Creset %s %Cgreen(%cr)%Creset [%Cgreen%an%Creset]' --abbrev-commit --date=short"},
		{Key: "alias.alias", Value: `config --get-regexp ^alias\.`},

		{Key: "alias.ac", Value: aliasAc},
		{Key: "alias.undo", Value: aliasUndo},
		{Key: "alias.ignore", Value: `!gi() { curl -sL https://www.gitignore.io/api/$@ ;}; gi`},
		{Key: "alias.iac", Value: `!giac() { git init -b main && git add . && git commit -m 'Initial commit' ;}; giac`},
		{Key: "alias.cc", Value: aliasCc},
		{Key: "alias.acp", Value: `!gacp() { git add . && git commit --reuse-message=HEAD --amend && git push -f ;}; gacp`},
		{Key: "alias.aca", Value: `!gaca() { git add . && git commit --reuse-message=HEAD --amend ;}; gaca`},

		{Key: "alias.tlog", Value: aliasTlog, Platforms: []string{Windows}, Requires: FeatureTortoiseGit},
		{Key: "core.editor", Value: "notepad", Platforms: []string{Windows}},
	}
}
