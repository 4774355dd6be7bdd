package seed

import (
	"fmt"
	"log"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
	"github.com/yourusername/interviewprep-api/internal/domain/repository"
)

// Run наполняет пустое хранилище базовым набором вопросов.
// Посеянные вопросы создаются с shown=false и раздаются до первого
// обращения к генеративному сервису. Повторный запуск ничего не делает.
func Run(questionRepo repository.QuestionRepository) error {
	total, err := questionRepo.CountTotal()
	if err != nil {
		return fmt.Errorf("count questions before seeding: %w", err)
	}
	if total > 0 {
		log.Printf("[Seed] Questions table already has %d rows, skipping seed", total)
		return nil
	}

	questions := BaselineQuestions()
	if err := questionRepo.CreateBatch(questions); err != nil {
		return fmt.Errorf("seed baseline questions: %w", err)
	}

	log.Printf("[Seed] Seeded %d baseline questions", len(questions))
	return nil
}

// BaselineQuestions возвращает стартовый набор задач уровня LeetCode
func BaselineQuestions() []entity.Question {
	return []entity.Question{
		{
			Question:    "Two Sum",
			Description: "Given an array of integers, return indices of the two numbers such that they add up to a specific target.",
			Constraints: "The array has at most 10^4 elements.",
			Hint:        "Try using a hash map to store the indices.",
			Solution:    "You can use a hash map to check if the complement of the current element exists.",
			CodeSolution: `func twoSum(nums []int, target int) []int {
    seen := make(map[int]int)
    for i, n := range nums {
        if j, ok := seen[target-n]; ok {
            return []int{j, i}
        }
        seen[n] = i
    }
    return nil
}`,
			Category: "array",
			Trivia:   "Two Sum is the very first problem on LeetCode and still one of the most attempted.",
		},
		{
			Question:    "Reverse Linked List",
			Description: "Reverse a singly linked list.",
			Constraints: "The list has at most 5000 nodes.",
			Hint:        "Consider using a three-pointer approach.",
			Solution:    "You can reverse the list by changing the next pointers of the nodes.",
			CodeSolution: `func reverseList(head *ListNode) *ListNode {
    var prev *ListNode
    for head != nil {
        next := head.Next
        head.Next = prev
        prev = head
        head = next
    }
    return prev
}`,
			Category: "linked list",
			Trivia:   "Linked lists were developed in 1955-1956 for the Information Processing Language.",
		},
		{
			Question:    "Longest Substring Without Repeating Characters",
			Description: "Given a string, find the length of the longest substring without repeating characters.",
			Constraints: "The string has at most 10^5 characters.",
			Hint:        "Use a sliding window approach.",
			Solution:    "A sliding window with a hash set can help keep track of unique characters.",
			CodeSolution: `func lengthOfLongestSubstring(s string) int {
    last := make(map[byte]int)
    left, best := 0, 0
    for right := 0; right < len(s); right++ {
        if i, ok := last[s[right]]; ok && i >= left {
            left = i + 1
        }
        last[s[right]] = right
        if right-left+1 > best {
            best = right - left + 1
        }
    }
    return best
}`,
			Category: "string",
			Trivia:   "The sliding window technique turns many quadratic scans into a single linear pass.",
		},
		{
			Question:    "Climbing Stairs",
			Description: "You are climbing a staircase. It takes n steps to reach the top. Each time you can either climb 1 or 2 steps. In how many distinct ways can you climb to the top?",
			Constraints: "1 <= n <= 45",
			Hint:        "Use dynamic programming to build up the solution.",
			Solution:    "The problem can be solved using a dynamic programming approach similar to the Fibonacci sequence.",
			CodeSolution: `func climbStairs(n int) int {
    if n <= 2 {
        return n
    }
    a, b := 1, 2
    for i := 3; i <= n; i++ {
        a, b = b, a+b
    }
    return b
}`,
			Category: "dynamic programming",
			Trivia:   "The answer for n stairs is exactly the (n+1)-th Fibonacci number.",
		},
		{
			Question:    "Number of Islands",
			Description: "Given a 2D binary grid map of '1's (land) and '0's (water), count the number of islands. An island is surrounded by water and is formed by connecting adjacent lands horizontally or vertically.",
			Constraints: "The grid is m x n, where 1 <= m, n <= 50.",
			Hint:        "Use Depth-First Search (DFS) or Breadth-First Search (BFS) to traverse the grid.",
			Solution:    "A DFS or BFS approach can be used to explore each island and mark visited land cells.",
			CodeSolution: `func numIslands(grid [][]byte) int {
    var sink func(i, j int)
    sink = func(i, j int) {
        if i < 0 || i >= len(grid) || j < 0 || j >= len(grid[0]) || grid[i][j] == '0' {
            return
        }
        grid[i][j] = '0'
        sink(i-1, j)
        sink(i+1, j)
        sink(i, j-1)
        sink(i, j+1)
    }
    count := 0
    for i := range grid {
        for j := range grid[i] {
            if grid[i][j] == '1' {
                sink(i, j)
                count++
            }
        }
    }
    return count
}`,
			Category: "graph",
			Trivia:   "Flood fill, the core of this problem, is the same algorithm behind the paint bucket tool.",
		},
	}
}
