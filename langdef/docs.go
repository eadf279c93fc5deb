/*
Package langdef compiles a textual token definition to a machine.Dfa structure.

Tokens are described using a small declarative language. A definition file is
a sequence of declarations:
*/
//  classDecl  = 'class', id, setExpr;
//  tokenDecl  = 'token', id, '/', regex, '/';
//  ignoreDecl = 'ignore', '/', regex, '/';
//
//  setExpr    = '[', ['^'], setItem, {setItem}, ']';
//  setItem    = char | char, '-', char | '[', id, ']';
//
//  regex      = concat, {'|', concat};
//  concat     = repeat, {repeat};
//  repeat     = atom, ['*' | '+' | '?'];
//  atom       = char | '[', id, ']' | '(', regex, ')';
/*
Definition files are ASCII text. Line comments start with // and are
recognized between declarations, not inside pattern or set bodies.

An id starts with a letter or underscore followed by letters, digits, or
underscores. Class names and token names live in separate namespaces; each
name may be declared only once within its namespace.

A class declares a named character set. Set members are literal characters,
inclusive ranges (a-z), or references to previously declared classes in
square brackets; all members are unioned. A leading ^ negates the set against
the ASCII alphabet (characters 0..127). A dash immediately before the closing
bracket (-]) is a literal member. Inside set and pattern bodies the escapes
\n \t \f \v \r denote the usual control characters; a backslash before any
other character yields that character itself, so \-, \], \/ and \  (escaped
space) are literal members.

A token declares a named rule with a pattern between slashes. Patterns
support alternation (|), grouping, the closures * + ?, literal characters,
and class references. An ignore rule is a token rule without a name: its
matches are consumed but never emitted.

Declaration order is significant: when one input matches several rules of
equal length, the first-declared rule wins. The compiled automaton always
prefers the longest match.

Compile converts a definition file to a machine.Dfa; Minimize optionally
reduces the automaton's state count without changing its behavior.
*/
package langdef
